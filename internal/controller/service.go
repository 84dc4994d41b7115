package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/project/catalog/internal/dto"
	"github.com/project/catalog/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type (
	BooksUseCase interface {
		AddBook(ctx context.Context, title, author string, year int) (dto.BookDTO, error)
		RemoveBook(ctx context.Context, id int) error
		SearchBook(ctx context.Context, criteria dto.SearchCriteria) ([]dto.BookDTO, error)
		ChangeStatus(ctx context.Context, id int, rawStatus string) error
		ListBooks(ctx context.Context) ([]dto.BookDTO, error)
	}
)

const tracerName = "github.com/project/catalog/internal/controller"

// 1ms to 2s.
var actionDurationBuckets = prometheus.ExponentialBuckets(1, 2, 12)

var (
	ActionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "library_menu_action_duration_ms",
		Help:    "Duration of menu actions in ms",
		Buckets: actionDurationBuckets,
	}, []string{"action"})

	ActionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "library_menu_action_errors_total",
		Help: "Number of menu actions that ended with an error",
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(ActionDuration, ActionErrors)
}

type menuAction struct {
	name    log.Action
	perform func(ctx context.Context) error
}

type implementation struct {
	logger       *zap.Logger
	booksUseCase BooksUseCase
	lines        chan string
	readErr      error
	out          io.Writer
	tracer       trace.Tracer
	now          func() time.Time
	actions      map[string]menuAction
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	in io.Reader,
	out io.Writer,
) *implementation {
	if logger != nil {
		logger = logger.With(zap.String("session_id", uuid.NewString()))
	}

	i := &implementation{
		logger:       logger,
		booksUseCase: booksUseCase,
		lines:        make(chan string),
		out:          out,
		tracer:       otel.Tracer(tracerName),
		now:          time.Now,
	}

	i.actions = map[string]menuAction{
		"1": {name: log.AddBook, perform: i.AddBook},
		"2": {name: log.RemoveBook, perform: i.RemoveBook},
		"3": {name: log.SearchBook, perform: i.SearchBooks},
		"4": {name: log.ListBooks, perform: i.ListBooks},
		"5": {name: log.ChangeStatus, perform: i.ChangeStatus},
	}

	go i.readLines(bufio.NewScanner(in))

	return i
}

// readLines feeds input lines to prompt so that a blocked read never holds
// up cancellation. readErr is set before lines is closed.
func (i *implementation) readLines(scanner *bufio.Scanner) {
	defer close(i.lines)

	for scanner.Scan() {
		i.lines <- scanner.Text()
	}

	i.readErr = scanner.Err()
}

// Run shows the menu and serves choices until the user exits, the input
// ends or ctx is cancelled. Failed actions are reported to the user and do
// not stop the loop.
func (i *implementation) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		i.println(msgMenu)

		choice, err := i.prompt(ctx, msgChoose)
		if errors.Is(err, errInputEnded) {
			i.println(msgExit)
			return i.readErr
		}
		if err != nil {
			return err
		}

		if choice == choiceExit {
			i.println(msgExit)
			return nil
		}

		action, found := i.actions[choice]
		if !found {
			i.println(msgInputError)
			continue
		}

		i.perform(ctx, action)
	}
}

func (i *implementation) perform(ctx context.Context, action menuAction) {
	start := time.Now()

	defer func() {
		ActionDuration.WithLabelValues(action.name).Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, action.name)
	defer span.End()

	err := action.perform(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	ActionErrors.WithLabelValues(action.name).Inc()
	span.RecordError(err)
	if i.logger != nil {
		i.logger.Error("menu action failed",
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("action", action.name),
			zap.Error(err))
	}

	i.println(i.convertErr(err))
}

// prompt prints msg and waits for one trimmed line. It returns
// errInputEnded once the input is exhausted and ctx.Err() on cancellation.
func (i *implementation) prompt(ctx context.Context, msg string) (string, error) {
	i.print(msg)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-i.lines:
		if !ok {
			return "", errInputEnded
		}
		return trimInput(line), nil
	}
}

func (i *implementation) print(msg string) {
	_, _ = fmt.Fprint(i.out, msg)
}

func (i *implementation) println(msg string) {
	_, _ = fmt.Fprintln(i.out, msg)
}
