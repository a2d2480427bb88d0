// Package notify реализует ежедневную пакетную рассылку напоминаний:
// обход всех записей таблицы, оценка окна уведомления и отправка письма
// по каждой подходящей записи.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/models"
	"github.com/cutoffnow/cutoff-backend/internal/services/reminder"
)

var (
	remindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cutoff_reminders_sent_total",
		Help: "Total number of reminder emails sent.",
	})
	recordsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cutoff_reminders_skipped_total",
		Help: "Total number of records skipped (blank owner or unparsable end date).",
	})
)

// Lister источник записей для рассылки.
type Lister interface {
	ListAll(ctx context.Context) ([]models.Record, error)
}

// Mailer отправляет одно письмо-напоминание.
type Mailer interface {
	SendReminder(rec models.Record, daysLeft int) error
}

// Service пакетная рассылка напоминаний.
//
// Прогон последовательный, каждое письмо ожидается до конца: при N записях
// стоимость прогона O(N * латентность SMTP). Состояния дедупликации нет —
// повторный запуск в тот же день отправит письма повторно; взаимного
// исключения между перекрывающимися прогонами тоже нет.
type Service struct {
	subs   Lister
	engine *reminder.Engine
	mailer Mailer
	log    *slog.Logger
	now    func() time.Time
}

// New создает новый Service. Окна уведомления передаются из конфига.
func New(subs Lister, engine *reminder.Engine, mailer Mailer, log *slog.Logger) *Service {
	return &Service{
		subs:   subs,
		engine: engine,
		mailer: mailer,
		log:    log,
		now:    time.Now,
	}
}

// Run один прогон рассылки. Возвращает количество отправленных писем.
//
// Запись без адреса владельца или с нечитаемой датой окончания молча
// пропускается. Ошибка хранилища или отправки прерывает прогон целиком;
// уже отправленные письма не откатываются и не переотправляются.
func (s *Service) Run(ctx context.Context) (int, error) {
	const op = "notify.Run"

	log := s.log.With(
		slog.String("op", op),
		slog.String("run_id", uuid.NewString()),
	)
	log.Info("starting reminder run")

	records, err := s.subs.ListAll(ctx)
	if err != nil {
		log.Error("failed to list records", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	today := s.now()
	sent := 0
	for _, rec := range records {
		if rec.OwnerEmail == "" {
			recordsSkipped.Inc()
			continue
		}
		endDate, err := reminder.ParseDate(rec.EndDate)
		if err != nil {
			log.Debug("skipping record with unparsable end date",
				slog.Int("row", rec.Row), slog.String("end_date", rec.EndDate))
			recordsSkipped.Inc()
			continue
		}
		if !s.engine.IsDue(today, endDate) {
			continue
		}

		daysLeft := reminder.DaysRemaining(today, endDate)
		if err := s.mailer.SendReminder(rec, daysLeft); err != nil {
			log.Error("failed to send reminder",
				slog.String("to", rec.OwnerEmail), sl.Err(err))
			return sent, fmt.Errorf("%s: %w", op, err)
		}
		remindersSent.Inc()
		sent++
		log.Info("reminder sent",
			slog.String("to", rec.OwnerEmail),
			slog.String("name", rec.Name),
			slog.Int("days_left", daysLeft))
	}

	log.Info("reminder run finished", slog.Int("sent", sent))
	return sent, nil
}
