// @title CRM Family API
// @version 1.0
// @description API de gestão de pessoas, comunicações, acompanhamentos, eventos e relatórios da igreja.
// @host localhost:3001
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"github.com/GustavoEngSoft/CRM-Family/config"
	_ "github.com/GustavoEngSoft/CRM-Family/docs"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/cache"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/middleware"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/notify"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/token"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"

	// Handlers
	"github.com/GustavoEngSoft/CRM-Family/internal/api/acompanhamento"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/comunicacao"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/dashboard"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/evento"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/mensagem"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/pessoa"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/relatorio"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/router"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/usuario"

	// Acesso a Dados
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/acompanhamentorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/comunicacaorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/dashboardrepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/eventorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/pessoarepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/relatoriorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/usuariorepo"

	// Lógica de Negócio
	"github.com/GustavoEngSoft/CRM-Family/internal/service/acompanhamentoservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/comunicacaoservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/dashboardservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/eventoservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/mensagemservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/pessoaservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/relatorioservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/usuarioservice"
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel, "crm-family")
	appLog.Info("⚡ Inicializando serviço CRM Family...", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, appLog)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	// B. Cache (Redis). Sem Redis o painel consulta direto o banco e o login fica sem rate limiting.
	var cacheClient cache.Client
	if redisClient, err := cache.NewRedisClient(cfg.RedisAddr); err != nil {
		appLog.Warn("Redis indisponível, seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		redisClient.Close()
	} else {
		cacheClient = redisClient
		defer redisClient.Close()
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	// C. Serviço de Tokens (JWT) e Validação
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	validator := validation.New()

	// D. Provedores de mensagens. Sem credenciais os envios são simulados.
	var emailSender mensagemservice.EmailSender
	if cfg.SMTP.Configured() {
		emailSender = notify.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		appLog.Warn("SMTP não configurado: emails em modo simulação.", nil)
	}
	var whatsAppSender mensagemservice.WhatsAppSender
	if cfg.Twilio.Configured() {
		whatsAppSender = notify.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.PhoneNumber)
	} else {
		appLog.Warn("Twilio não configurado: WhatsApp em modo simulação.", nil)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios
	pessoaRepo := pessoarepo.NewPessoaRepository(db, cfg.DBTimeout, appLog)
	comunicacaoRepo := comunicacaorepo.NewComunicacaoRepository(db, cfg.DBTimeout, appLog)
	acompanhamentoRepo := acompanhamentorepo.NewAcompanhamentoRepository(db, cfg.DBTimeout, appLog)
	eventoRepo := eventorepo.NewEventoRepository(db, cfg.DBTimeout, appLog)
	inscricaoRepo := eventorepo.NewInscricaoRepository(db, cfg.DBTimeout, appLog)
	relatorioRepo := relatoriorepo.NewRelatorioRepository(db, cfg.DBTimeout, appLog)
	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, appLog)
	dashboardRepo := dashboardrepo.NewDashboardRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	pessoaSvc := pessoaservice.NewService(pessoaRepo, validator, appLog)
	comunicacaoSvc := comunicacaoservice.NewService(comunicacaoRepo, validator, appLog)
	acompanhamentoSvc := acompanhamentoservice.NewService(acompanhamentoRepo, validator, appLog)
	eventoSvc := eventoservice.NewService(eventoRepo, inscricaoRepo, validator, appLog)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, tokenSvc, validator, appLog)
	dashboardSvc := dashboardservice.NewService(dashboardRepo, cacheClient, cfg.CacheTTL, appLog)
	mensagemSvc := mensagemservice.NewService(emailSender, whatsAppSender, comunicacaoSvc, validator, appLog)

	// Os geradores de relatório leem e gravam na mesma transação.
	relatorioRepos := relatorioservice.Repositories{
		Pessoas:         pessoaRepo,
		Comunicacoes:    comunicacaoRepo,
		Acompanhamentos: acompanhamentoRepo,
		Relatorios:      relatorioRepo,
	}
	relatorioTx := relatorioservice.NewTransactor(db, func(q database.Querier) relatorioservice.Repositories {
		return relatorioservice.Repositories{
			Pessoas:         pessoaRepo.WithQuerier(q),
			Comunicacoes:    comunicacaoRepo.WithQuerier(q),
			Acompanhamentos: acompanhamentoRepo.WithQuerier(q),
			Relatorios:      relatorioRepo.WithQuerier(q),
		}
	})
	relatorioSvc := relatorioservice.NewService(relatorioRepos, relatorioTx, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	// C. Handlers
	handlers := router.Handlers{
		Pessoa:         pessoa.NewHandler(pessoaSvc, appLog),
		Comunicacao:    comunicacao.NewHandler(comunicacaoSvc, appLog),
		Acompanhamento: acompanhamento.NewHandler(acompanhamentoSvc, appLog),
		Evento:         evento.NewHandler(eventoSvc, appLog),
		Usuario:        usuario.NewHandler(usuarioSvc, appLog),
		Relatorio:      relatorio.NewHandler(relatorioSvc, appLog),
		Dashboard:      dashboard.NewHandler(dashboardSvc, appLog),
		Mensagem:       mensagem.NewHandler(mensagemSvc, appLog),
	}

	// 4. Configuração e Início do Roteador/Servidor
	auth := middleware.NewAuthMiddleware(tokenSvc, appLog)
	r := router.NewRouter(handlers, auth, cacheClient, router.Options{
		CORSOrigins:     cfg.CORSOrigins,
		LoginRateLimit:  cfg.RateLimitMaxRequests,
		LoginRatePeriod: cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor CRM Family ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
