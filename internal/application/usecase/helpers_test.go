package usecase_test

import (
	"context"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func settingsWith(mutate func(s *entity.Settings)) *entity.Settings {
	s := entity.DefaultSettings()
	if mutate != nil {
		mutate(s)
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
