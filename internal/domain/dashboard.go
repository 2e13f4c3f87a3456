package domain

import "math"

// Metric é um indicador comparado entre a janela atual (últimos 30 dias) e a anterior ([60,30) dias).
type Metric struct {
	Atual      int `json:"atual"`
	Anterior   int `json:"anterior"`
	Variacao   int `json:"variacao"`
	Percentual int `json:"percentual"`
}

// NewMetric calcula variação absoluta e percentual.
func NewMetric(atual, anterior int) Metric {
	return Metric{
		Atual:      atual,
		Anterior:   anterior,
		Variacao:   atual - anterior,
		Percentual: PercentChange(atual, anterior),
	}
}

// PercentChange devolve round((atual-anterior)/anterior*100).
// Com anterior == 0: 100 se atual > 0, senão 0.
func PercentChange(atual, anterior int) int {
	if anterior == 0 {
		if atual > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(atual-anterior) / float64(anterior) * 100))
}

// Percent devolve round(parte/total*100), 0 quando total == 0.
func Percent(parte, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(parte) / float64(total) * 100))
}

// DashboardStats são os indicadores do topo do painel.
type DashboardStats struct {
	TotalPessoas              int    `json:"totalPessoas"`
	NovasPessoas              Metric `json:"novasPessoas"`
	ComunicacoesEnviadas      Metric `json:"comunicacoesEnviadas"`
	AcompanhamentosAbertos    int    `json:"acompanhamentosAbertos"`
	AcompanhamentosConcluidos Metric `json:"acompanhamentosConcluidos"`
	Ativos                    int    `json:"ativos"`
	Inativos                  int    `json:"inativos"`
	PercentualAtivos          int    `json:"percentualAtivos"`
}

// CategoriaStats é o crescimento de uma categoria (tag) no painel.
type CategoriaStats struct {
	Categoria   string `json:"categoria"`
	Total       int    `json:"total"`
	Novos       int    `json:"novos"`
	Anteriores  int    `json:"anteriores"`
	Crescimento int    `json:"crescimento"`
	Percentual  int    `json:"percentual"`
}

// PontoMensal é um ponto da série de crescimento mensal.
type PontoMensal struct {
	Mes   string `json:"mes" example:"Outubro"`
	Label string `json:"label" example:"Out/26"`
	Total int    `json:"total"`
}

// PontoDiario é um ponto da série diária.
type PontoDiario struct {
	Dia   string `json:"dia" example:"2026-10-16"`
	Label string `json:"label" example:"16/10"`
	Total int    `json:"total"`
}

// Atividade mede o engajamento: pessoas com algum contato ou acompanhamento recente.
type Atividade struct {
	Ativas     int `json:"ativas"`
	Total      int `json:"total"`
	Percentual int `json:"percentual"`
}
