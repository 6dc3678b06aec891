package server

import (
	"log"
	"os"

	"dppify/app/agent"
	"dppify/app/api"
	"dppify/logger"
	"dppify/model"
	"dppify/pdf"
	"dppify/prompts"
	"dppify/uploader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	listenAddr string
	logger     *zap.Logger
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     logger.Get(),
	}
}

func (s *Server) Stop() {
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	provider, err := model.NewCerebrasProvider(model.CerebrasConfig{
		APIKey: os.Getenv("CEREBRAS_API_KEY"),
		Model:  os.Getenv("LLM_MODEL"),
	})
	if err != nil {
		log.Fatal("error to create model provider: ", err)
		return
	}

	outDir := envOr("OUT_DIR", "./output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal("error to create output directory: ", err)
		return
	}

	library := prompts.Load(envOr("PROMPTS_DIR", "./prompts/templates"))
	renderer := pdf.NewRenderer(pdf.DefaultConfig())

	var (
		app          = fiber.New(config)
		checkHandler = api.NewCheckHandler()
		dppHandler   = api.NewDPPHandler(
			agent.New(provider, library, renderer, outDir),
			uploader.New(),
		)
		check = app.Group("/check")
		apiv1 = app.Group("/api/v1")
	)

	app.Get("/", checkHandler.HandleHealthy)
	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/dpp", dppHandler.HandleGenerateDPP)

	s.logger.Info("server listening",
		zap.String("addr", s.listenAddr),
		zap.String("model", provider.ModelID()))

	if err := app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", zap.Error(err))
		return
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
