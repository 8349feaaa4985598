//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/campusdesk/college-helpdesk/internal/bootstrap"
	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
	"github.com/campusdesk/college-helpdesk/internal/infra/config"
	httpiface "github.com/campusdesk/college-helpdesk/internal/interface/http"
	"github.com/campusdesk/college-helpdesk/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMatchingConfig,
		provideHTTPConfig,
		provideAdminConfig,
		providePostgresPool,
		provideFAQRepository,
		provideConversationLog,
		chatbot.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		provideBot,
		bootstrap.NewApp,
	)
	return nil, nil
}
