// Package scheduler содержит ежедневный триггер рассылки напоминаний.
//
// Триггер не вызывает бизнес-логику напрямую: по расписанию он дергает
// маршрут /sendReminders обычным HTTP-запросом, как это делал бы внешний
// cron. Взаимного исключения между прогонами нет: два срабатывания подряд
// приведут к двум параллельным прогонам.
package scheduler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cutoffnow/cutoff-backend/internal/config"
	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
)

// Scheduler запускает ежедневный прогон рассылки по cron-расписанию.
type Scheduler struct {
	cron   *cron.Cron
	client *http.Client
	cfg    config.Reminder
	log    *slog.Logger
}

// New создает Scheduler с расписанием из конфига.
func New(cfg config.Reminder, log *slog.Logger) (*Scheduler, error) {
	const op = "scheduler.New"

	s := &Scheduler{
		cron:   cron.New(),
		client: &http.Client{Timeout: 5 * time.Minute},
		cfg:    cfg,
		log:    log,
	}
	if _, err := s.cron.AddFunc(cfg.CronSpec, s.trigger); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Start запускает планировщик в фоне.
func (s *Scheduler) Start() {
	s.log.Info("reminder scheduler started", slog.String("spec", s.cfg.CronSpec))
	s.cron.Start()
}

// Stop останавливает планировщик; уже начавшийся прогон не прерывается.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("reminder scheduler stopped")
}

// trigger один вызов маршрута рассылки.
func (s *Scheduler) trigger() {
	s.log.Info("running daily reminder check")

	resp, err := s.client.Get(s.cfg.TriggerURL)
	if err != nil {
		s.log.Error("reminder trigger failed", sl.Err(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.log.Error("reminder route returned error", slog.Int("status", resp.StatusCode))
		return
	}
	s.log.Info("daily reminders executed")
}
