package queue

import (
	"encoding/json"

	"github.com/bullion-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskOrderCommission 订单完成后的佣金入账任务
	TaskOrderCommission = constants.TaskOrderCommission
	// TaskPayoutResultEmail 提现审核结果邮件任务
	TaskPayoutResultEmail = constants.TaskPayoutResultEmail
)

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// OrderCommissionPayload 佣金入账任务载荷
type OrderCommissionPayload struct {
	OrderID uint `json:"order_id"`
}

// PayoutResultEmailPayload 提现结果邮件任务载荷
type PayoutResultEmailPayload struct {
	PayoutID uint `json:"payout_id"`
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewOrderCommissionTask 创建佣金入账任务
func NewOrderCommissionTask(payload OrderCommissionPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCommission, body), nil
}

// NewPayoutResultEmailTask 创建提现结果邮件任务
func NewPayoutResultEmailTask(payload PayoutResultEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPayoutResultEmail, body), nil
}
