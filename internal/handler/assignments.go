package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffdesk/shift-scheduler/internal/domain"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId" validate:"required"`
		ShiftID    string `json:"shiftId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := h.engine.AssignShift(r.Context(), req.EmployeeID, req.ShiftID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if result.Accepted() {
		h.publishAssignmentNotification(r.Context(), result)
	}

	// rejections still answer 200; the status code inside the result is
	// what callers branch on
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: result.Accepted(),
		Message: result.Message(),
		Data:    result,
	})
}

// publishAssignmentNotification queues a mail for the roster mailbox. The
// assignment is already committed, so a publish failure only logs: the
// notification is best-effort.
func (h *Handler) publishAssignmentNotification(ctx context.Context, result domain.AssignmentResult) {
	if h.mailChannel == nil || h.config.Email.RosterAddress == "" {
		return
	}

	shifts, err := h.engine.EmployeeSchedule(ctx, result.EmployeeID)
	if err != nil {
		slog.Warn("failed to load schedule for notification", "error", err)
		return
	}
	var assigned domain.Shift
	for _, s := range shifts {
		if s.ShiftID == result.ShiftID {
			assigned = s
			break
		}
	}

	var employeeName string
	employees, err := h.engine.Employees(ctx)
	if err != nil {
		slog.Warn("failed to load employees for notification", "error", err)
		return
	}
	for _, e := range employees {
		if e.EmployeeID == result.EmployeeID {
			employeeName = e.Name
			break
		}
	}

	mailMessage := domain.MailMessage{
		Type: "shift_assigned",
		To:   h.config.Email.RosterAddress,
		Data: domain.ShiftAssignedMailData{
			EmployeeName: employeeName,
			EmployeeID:   result.EmployeeID,
			ShiftID:      result.ShiftID,
			Date:         assigned.Date,
			StartTime:    assigned.StartTime,
			EndTime:      assigned.EndTime,
		},
	}

	body, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("failed to encode notification", "error", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		publishCtx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Warn("failed to publish assignment notification", "error", err)
	}
}
