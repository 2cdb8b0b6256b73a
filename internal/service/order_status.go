package service

import "github.com/bullion-next/internal/constants"

// orderStatusTransitions 订单状态机，未列出的流转一律拒绝。
// 前三个状态允许取消，进入备货后只能沿发货、完成推进。
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPendingConfirmation: {
		constants.OrderStatusUnpaid,
		constants.OrderStatusCanceled,
	},
	constants.OrderStatusUnpaid: {
		constants.OrderStatusPaymentReview,
		constants.OrderStatusCanceled,
	},
	constants.OrderStatusPaymentReview: {
		constants.OrderStatusPreparing,
		constants.OrderStatusUnpaid,
		constants.OrderStatusCanceled,
	},
	constants.OrderStatusPreparing: {
		constants.OrderStatusShipping,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusCompleted,
	},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCanceled:  {},
}

// CanTransitionOrderStatus 判断订单状态流转是否合法
func CanTransitionOrderStatus(from, to string) bool {
	targets, ok := orderStatusTransitions[from]
	if !ok {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus 判断订单是否处于终态
func IsTerminalOrderStatus(status string) bool {
	targets, ok := orderStatusTransitions[status]
	return ok && len(targets) == 0
}

// IsCancelableOrderStatus 判断订单当前是否可取消
func IsCancelableOrderStatus(status string) bool {
	return CanTransitionOrderStatus(status, constants.OrderStatusCanceled)
}

// orderStatusTimestampColumn 返回进入目标状态时需要写入的时间戳列
func orderStatusTimestampColumn(status string) string {
	switch status {
	case constants.OrderStatusUnpaid:
		return "confirmed_at"
	case constants.OrderStatusPaymentReview:
		return "payment_proof_at"
	case constants.OrderStatusPreparing:
		return "paid_at"
	case constants.OrderStatusShipping:
		return "shipped_at"
	case constants.OrderStatusCompleted:
		return "completed_at"
	case constants.OrderStatusCanceled:
		return "canceled_at"
	default:
		return ""
	}
}
