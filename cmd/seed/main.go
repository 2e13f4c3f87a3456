package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/GustavoEngSoft/CRM-Family/config"
	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/token"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/eventorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/pessoarepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/usuariorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/eventoservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/pessoaservice"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/usuarioservice"
)

type pessoaSeed struct {
	nome, email, telefone, cidade string
	tags                          []string
}

var pessoas = []pessoaSeed{
	{"João Silva", "joao.silva@email.com", "11987654321", "São Paulo", []string{domain.TagMembros, domain.TagLideres}},
	{"Maria Santos", "maria.santos@email.com", "11976543210", "São Paulo", []string{domain.TagMembros, domain.TagVoluntarios}},
	{"Pedro Oliveira", "pedro.oliveira@email.com", "11965432109", "Guarulhos", []string{domain.TagObreiros, domain.TagMembros}},
	{"Ana Costa", "ana.costa@email.com", "11954321098", "Osasco", []string{domain.TagVisitantes, "Precisa de Visita"}},
	{"Lucas Pereira", "lucas.pereira@email.com", "11943210987", "São Paulo", []string{"Novo Convertido", "Discipulado"}},
}

// Popula o banco com o administrador padrão e dados de exemplo. Pode ser executado mais de uma vez.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel, "crm-family-seed")

	db, err := database.NewPostgresDB(cfg.DatabaseURL, appLog)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	validator := validation.New()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	usuarioSvc := usuarioservice.NewService(usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, appLog), tokenSvc, validator, appLog)
	pessoaRepo := pessoarepo.NewPessoaRepository(db, cfg.DBTimeout, appLog)
	pessoaSvc := pessoaservice.NewService(pessoaRepo, validator, appLog)
	eventoSvc := eventoservice.NewService(
		eventorepo.NewEventoRepository(db, cfg.DBTimeout, appLog),
		eventorepo.NewInscricaoRepository(db, cfg.DBTimeout, appLog),
		validator, appLog,
	)

	// 1. Administrador
	_, err = usuarioSvc.Register(ctx, domain.RegisterRequest{
		Nome: "Administrador", Email: "admin@crm.com", Senha: "admin123", Perfil: domain.PerfilAdmin,
	})
	var conflict *apperror.ConflictError
	switch {
	case errors.As(err, &conflict):
		appLog.Info("Administrador já existe.", map[string]interface{}{"email": "admin@crm.com"})
	case err != nil:
		appLog.Fatal("Falha ao criar administrador.", err)
	default:
		appLog.Info("Administrador criado.", map[string]interface{}{"email": "admin@crm.com"})
	}

	// 2. Pessoas e evento de exemplo, apenas em banco vazio
	total, err := pessoaRepo.Count(ctx, resource.Filter{})
	if err != nil {
		appLog.Fatal("Falha ao contar pessoas.", err)
	}
	if total > 0 {
		appLog.Info("Banco já possui pessoas, dados de exemplo ignorados.", map[string]interface{}{"pessoas": total})
		return
	}

	for _, p := range pessoas {
		email, telefone, cidade, estado := p.email, p.telefone, p.cidade, "SP"
		if _, err := pessoaSvc.Create(ctx, domain.PessoaInput{
			Nome: p.nome, Email: &email, Telefone: &telefone, Cidade: &cidade, Estado: &estado, Tags: p.tags,
		}); err != nil {
			appLog.Fatal("Falha ao criar pessoa de exemplo.", err)
		}
	}

	local := "Templo Sede"
	data := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	if _, err := eventoSvc.Create(ctx, domain.EventoInput{Nome: "Culto de Jovens", Data: data, Horario: "19:30", Local: &local}); err != nil {
		appLog.Fatal("Falha ao criar evento de exemplo.", err)
	}

	appLog.Info("Seed concluído.", map[string]interface{}{"pessoas": len(pessoas), "eventos": 1})
}
