package catalog

import "finakihub_backend/internals/constants"

type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	CoinsReward int    `json:"coins_reward"`
	Type        string `json:"type"`
	Level       string `json:"level"`
}

var modulesByTier = map[string][]Module{
	constants.TierInicial: {
		{ID: "coin_recognition", Title: "Reconoce las Monedas", Description: "Aprende a identificar diferentes monedas", Icon: "🪙", CoinsReward: 20, Type: "game"},
		{ID: "needs_wants", Title: "Necesito o Quiero", Description: "Diferencia entre necesidades y deseos", Icon: "🎈", CoinsReward: 25, Type: "quiz"},
		{ID: "piggy_bank", Title: "Mi Alcancía", Description: "Aprende por qué es importante ahorrar", Icon: "🐽", CoinsReward: 20, Type: "story"},
		{ID: "counting_money", Title: "Contar Dinero", Description: "Practica sumando monedas", Icon: "🧮", CoinsReward: 25, Type: "game"},
	},
	constants.TierPrimaria: {
		{ID: "lemonade_stand", Title: "Puesto de Limonada", Description: "Aprende sobre presupuesto con tu propio negocio", Icon: "🍋", CoinsReward: 50, Type: "game"},
		{ID: "savings_challenge", Title: "Desafío de Ahorro", Description: "Ahorra para comprar algo que deseas", Icon: "🐷", CoinsReward: 30, Type: "challenge"},
		{ID: "simple_interest", Title: "Interés Simple", Description: "Descubre cómo crece tu dinero", Icon: "💰", CoinsReward: 40, Type: "tutorial"},
		{ID: "debt_game", Title: "Préstamos y Deudas", Description: "Aprende sobre pedir prestado dinero", Icon: "🏦", CoinsReward: 45, Type: "roleplay"},
	},
	constants.TierSecundaria: {
		{ID: "stock_market", Title: "Bolsa de Valores", Description: "Invierte en acciones y aprende sobre el mercado", Icon: "📈", CoinsReward: 60, Type: "simulation"},
		{ID: "credit_cards", Title: "Tarjetas de Crédito", Description: "Entiende cómo funcionan y sus riesgos", Icon: "💳", CoinsReward: 55, Type: "simulator"},
		{ID: "compound_interest", Title: "Interés Compuesto", Description: "El poder del crecimiento exponencial", Icon: "📊", CoinsReward: 50, Type: "calculator"},
		{ID: "budget_planning", Title: "Presupuesto Personal", Description: "Planifica tu futuro financiero", Icon: "📋", CoinsReward: 65, Type: "planner"},
	},
}

func init() {
	for tier, mods := range modulesByTier {
		for i := range mods {
			mods[i].Level = tier
		}
	}
}

// ModulesForTier returns a copy of the tier's modules; ok is false for unknown tiers.
func ModulesForTier(tier string) ([]Module, bool) {
	mods, ok := modulesByTier[tier]
	if !ok {
		return nil, false
	}
	out := make([]Module, len(mods))
	copy(out, mods)
	return out, true
}
