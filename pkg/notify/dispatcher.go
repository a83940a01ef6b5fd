// Package notify fans every created alert out to topics, the live dashboard,
// personal sessions, email and SMS.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/threshold"
)

var (
	ErrChannelUnavailable = errors.New("notification channel unavailable")
	ErrRateLimited        = errors.New("notification rate limited")
)

const (
	TopicBroadcast = "factory/alerts"
	TopicDashboard = "factory/dashboard"

	DashboardNewAlert = "NEW_ALERT"

	DefaultRecentWindow = 30 * time.Minute
)

const (
	channelTopic     = "topic"
	channelDashboard = "dashboard"
	channelPersonal  = "personal"
	channelEmail     = "email"
	channelSMS       = "sms"

	statusSent        = "sent"
	statusFailed      = "failed"
	statusUnavailable = "unavailable"
)

func SeverityTopic(s models.Severity) string {
	return fmt.Sprintf("%s/%s", TopicBroadcast, s.Topic())
}

func FacilityTopic(facilityID uint) string {
	return fmt.Sprintf("factory/facilities/%d/alerts", facilityID)
}

type TopicPublisher interface {
	PublishTopic(ctx context.Context, topic string, payload any) error
}

type DashboardPusher interface {
	PushDashboard(ctx context.Context, update DashboardUpdate) error
}

type PersonalPusher interface {
	PushPersonal(ctx context.Context, userID string, alert models.AlertView) error
}

type EmailSender interface {
	Available() bool
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	Available() bool
	SendSMS(ctx context.Context, to, text string) error
}

// UserDirectory is satisfied by factory.IUser.
type UserDirectory interface {
	GetActiveUserIDsByRole(ctx context.Context, roles ...models.Role) ([]string, error)
	GetActiveEmailsByRole(ctx context.Context, roles ...models.Role) ([]string, error)
	GetEmergencyPhoneNumbers(ctx context.Context) ([]string, error)
}

type DashboardUpdate struct {
	Type       string           `json:"type"`
	Alert      models.AlertView `json:"alert"`
	Timestamp  time.Time        `json:"timestamp"`
	Severity   models.Severity  `json:"severity"`
	FacilityID uint             `json:"facilityId"`
}

// Dispatcher delivers one AlertCreatedEvent. Every step and every recipient
// is isolated: a failure is logged and counted, and delivery continues.
type Dispatcher struct {
	Topics    []TopicPublisher
	Dashboard DashboardPusher
	Personal  PersonalPusher
	Email     EmailSender
	SMS       SMSSender
	Users     UserDirectory

	Policy       threshold.Policy
	RecentWindow time.Duration
	Now          func() time.Time
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

func (d *Dispatcher) recentWindow() time.Duration {
	if d.RecentWindow > 0 {
		return d.RecentWindow
	}
	return DefaultRecentWindow
}

func (d *Dispatcher) policy() threshold.Policy {
	if d.Policy.HighRatio <= 0 {
		return threshold.DefaultPolicy()
	}
	return d.Policy
}

// Subscribe registers the dispatcher on bus, running on pool.
func (d *Dispatcher) Subscribe(bus *events.Bus[models.AlertCreatedEvent], pool events.Submitter) {
	bus.Subscribe("notification_dispatcher", pool, d.Handle)
}

// Handle never returns an error; failures stay inside their own step.
func (d *Dispatcher) Handle(ctx context.Context, event models.AlertCreatedEvent) error {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)
	logger.Info("Processing alert event", zap.String("event_id", event.ID.String()), zap.String("summary", event.Summary()))

	alert := event.Alert

	for _, topic := range []string{TopicBroadcast, SeverityTopic(event.Severity), FacilityTopic(event.FacilityID)} {
		for _, pub := range d.Topics {
			d.step(channelTopic, topic, func() error { return pub.PublishTopic(ctx, topic, alert) })
		}
	}

	d.pushDashboard(ctx, event)

	if event.IsHighSeverity() {
		d.handleHighSeverity(ctx, event)
	}

	if event.IsRecent(d.now(), d.recentWindow()) {
		logger.Info("Recent alert", zap.String("summary", alert.Summary()))
		d.pushDashboard(ctx, event)
		d.sendPersonal(ctx, alert, models.RoleOperator)
	}

	logger.Info("Alert event processed", zap.Uint("alert_id", alert.ID))
	return nil
}

func (d *Dispatcher) handleHighSeverity(ctx context.Context, event models.AlertCreatedEvent) {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)
	alert := event.Alert
	logger.Warn("High severity alert", zap.String("summary", alert.Summary()))

	d.sendPersonal(ctx, alert, models.RoleManager, models.RoleAdmin)
	d.sendEmails(ctx, alert)

	if d.policy().IsEmergency(alert.ThresholdMin, alert.ThresholdMax, alert.Value) {
		d.sendEmergencySMS(ctx, alert)
	}
}

func (d *Dispatcher) pushDashboard(ctx context.Context, event models.AlertCreatedEvent) {
	if d.Dashboard == nil {
		return
	}
	update := DashboardUpdate{
		Type:       DashboardNewAlert,
		Alert:      event.Alert,
		Timestamp:  d.now(),
		Severity:   event.Severity,
		FacilityID: event.FacilityID,
	}
	d.step(channelDashboard, TopicDashboard, func() error { return d.Dashboard.PushDashboard(ctx, update) })
}

func (d *Dispatcher) sendPersonal(ctx context.Context, alert models.AlertView, roles ...models.Role) {
	if d.Personal == nil || d.Users == nil {
		return
	}

	var ids []string
	d.lookup(channelPersonal, func() (err error) {
		ids, err = d.Users.GetActiveUserIDsByRole(ctx, roles...)
		return err
	})

	for _, id := range ids {
		d.step(channelPersonal, id, func() error { return d.Personal.PushPersonal(ctx, id, alert) })
	}
}

func (d *Dispatcher) sendEmails(ctx context.Context, alert models.AlertView) {
	if d.Email == nil || !d.Email.Available() {
		d.unavailable(channelEmail)
		return
	}

	var emails []string
	d.lookup(channelEmail, func() (err error) {
		emails, err = d.Users.GetActiveEmailsByRole(ctx, models.RoleManager, models.RoleAdmin)
		return err
	})

	subject := fmt.Sprintf("[%s] %s / %s out of range", alert.Severity, alert.FacilityName, alert.SensorName)
	body := fmt.Sprintf("%s\nThreshold: %s\n%s\nAt: %s", alert.Summary(), alert.ThresholdInfo(), alert.Message, alert.CreatedAt.Format(time.RFC3339))

	for _, to := range emails {
		d.step(channelEmail, to, func() error { return d.Email.SendEmail(ctx, to, subject, body) })
	}
}

func (d *Dispatcher) sendEmergencySMS(ctx context.Context, alert models.AlertView) {
	if d.SMS == nil || !d.SMS.Available() {
		d.unavailable(channelSMS)
		return
	}

	var phones []string
	d.lookup(channelSMS, func() (err error) {
		phones, err = d.Users.GetEmergencyPhoneNumbers(ctx)
		return err
	})

	text := fmt.Sprintf("EMERGENCY %s (%s)", alert.Summary(), alert.ThresholdInfo())
	for _, phone := range phones {
		d.step(channelSMS, phone, func() error { return d.SMS.SendSMS(ctx, phone, text) })
	}
}

func (d *Dispatcher) unavailable(channel string) {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)
	metrics.NotificationsTotal.WithLabelValues(channel, statusUnavailable).Inc()
	logger.Debug("Channel unavailable, skipping", zap.String("channel", channel))
}

func guarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.PanicsRecovered.WithLabelValues("notifier").Inc()
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func (d *Dispatcher) lookup(channel string, fn func() error) {
	if err := guarded(fn); err != nil {
		logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)
		logger.Error("Recipient lookup failed", zap.String("channel", channel), zap.Error(err))
	}
}

func (d *Dispatcher) step(channel, target string, fn func() error) {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryDispatch)

	err := guarded(fn)

	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(channel, statusFailed).Inc()
		logger.Error("Notification failed",
			zap.String("channel", channel),
			zap.String("target", target),
			zap.Error(err),
		)
		return
	}
	metrics.NotificationsTotal.WithLabelValues(channel, statusSent).Inc()
}
