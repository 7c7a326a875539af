package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки клиента календаря
type Config struct {
	CalendarID     string
	AccessToken    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Client клиент для работы с Google Calendar.
// Получает готовый access token через конфигурацию - обновление OAuth
// токенов живёт в другом сервисе.
type Client struct {
	svc        *calendar.Service
	calendarID string
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(ctx context.Context, cfg Config, log Logger) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		svc:        svc,
		calendarID: cfg.CalendarID,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		log:        log,
	}, nil
}

// CreateEvent создает событие тренировки и возвращает его ID
func (c *Client) CreateEvent(ctx context.Context, ev *Event) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	created, err := c.svc.Events.Insert(c.calendarID, &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: failed to insert event: %v", ErrInternal, err)
	}

	return created.Id, nil
}

// CreateEventWithGracefulDegradation создает событие с graceful degradation.
// При недоступности календаря возвращает ErrServiceDegraded - бронирование
// подтверждается без события, ссылка остается пустой.
func (c *Client) CreateEventWithGracefulDegradation(ctx context.Context, ev *Event) (string, error) {
	eventID, err := c.CreateEvent(ctx, ev)
	if err != nil {
		c.log.Error("Calendar unavailable, applying graceful degradation for event %q: %v", ev.Summary, err)
		return "", fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully created calendar event id=%s", eventID)
	return eventID, nil
}

// DeleteEvent удаляет событие из календаря
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return ErrEventNotFound
		}
		return fmt.Errorf("%w: failed to delete event: %v", ErrInternal, err)
	}

	return nil
}
