package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bullion-next/internal/logger"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/provider"
	"github.com/bullion-next/internal/queue"
	"github.com/bullion-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskOrderCommission, c.handleOrderCommission)
	mux.HandleFunc(queue.TaskPayoutResultEmail, c.handlePayoutResultEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo:      order.OrderNo,
		Status:       status,
		Amount:       order.TotalAmount,
		Currency:     order.Currency,
		TrackingInfo: buildOrderTrackingInfo(order),
	}
	if err := c.EmailService.SendOrderStatusEmail(strings.TrimSpace(user.Email), input, strings.TrimSpace(user.Locale)); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

// buildOrderTrackingInfo 拼接承运商与运单号，未发货订单返回空串。
func buildOrderTrackingInfo(order *models.Order) string {
	if order == nil {
		return ""
	}
	trackingNumber := strings.TrimSpace(order.TrackingNumber)
	if trackingNumber == "" {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", strings.TrimSpace(order.Courier), trackingNumber))
}

func (c *Consumer) handleOrderCommission(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_commission_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCommissionPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_commission_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_commission_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.AffiliateService == nil {
		logger.Warnw("worker_order_commission_skip_affiliate_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.AffiliateService.HandleOrderCompleted(payload.OrderID); err != nil {
		logger.Warnw("worker_order_commission_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handlePayoutResultEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_payout_result_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PayoutResultEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payout_result_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.PayoutID == 0 {
		logger.Debugw("worker_payout_result_email_skip_invalid_payload", "payout_id", payload.PayoutID)
		return nil
	}
	payout, err := c.AffiliateRepo.GetPayoutByID(payload.PayoutID)
	if err != nil {
		logger.Warnw("worker_payout_result_email_fetch_failed", "payout_id", payload.PayoutID, "error", err)
		return err
	}
	if payout == nil {
		logger.Debugw("worker_payout_result_email_skip_not_found", "payout_id", payload.PayoutID)
		return nil
	}
	profile, err := c.AffiliateRepo.GetProfileByID(payout.AffiliateProfileID)
	if err != nil {
		logger.Warnw("worker_payout_result_email_fetch_profile_failed", "payout_id", payout.ID, "error", err)
		return err
	}
	if profile == nil {
		logger.Debugw("worker_payout_result_email_skip_profile_not_found", "payout_id", payout.ID)
		return nil
	}
	user, err := c.UserRepo.GetByID(profile.UserID)
	if err != nil {
		logger.Warnw("worker_payout_result_email_fetch_user_failed", "payout_id", payout.ID, "user_id", profile.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_payout_result_email_skip_empty_receiver", "payout_id", payout.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_payout_result_email_skip_email_service_nil", "payout_id", payout.ID)
		return nil
	}
	input := service.PayoutResultEmailInput{
		Status:       payout.Status,
		Amount:       payout.Amount,
		Currency:     payout.Currency,
		RejectReason: payout.RejectReason,
	}
	if err := c.EmailService.SendPayoutResultEmail(strings.TrimSpace(user.Email), input, strings.TrimSpace(user.Locale)); err != nil {
		logger.Warnw("worker_payout_result_email_send_failed",
			"payout_id", payout.ID,
			"status", payout.Status,
			"error", err,
		)
		return err
	}
	return nil
}
