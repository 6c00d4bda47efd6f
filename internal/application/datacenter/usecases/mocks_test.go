package usecases

import (
	"context"

	"datadesk/internal/domain/datacenter"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

type mockLogRepository struct {
	SaveFunc     func(ctx context.Context, l *datacenter.Log) error
	UpdateFunc   func(ctx context.Context, l *datacenter.Log) error
	FindByIDFunc func(ctx context.Context, id string) (*datacenter.Log, error)
	ListFunc     func(ctx context.Context, scope authorization.Scope) ([]*datacenter.Log, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *mockLogRepository) Save(ctx context.Context, l *datacenter.Log) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockLogRepository) Update(ctx context.Context, l *datacenter.Log) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLogRepository) FindByID(ctx context.Context, id string) (*datacenter.Log, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("data center log not found")
}

func (m *mockLogRepository) List(ctx context.Context, scope authorization.Scope) ([]*datacenter.Log, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockLogRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
