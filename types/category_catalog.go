package types

import "github.com/alerta-golpe/api-go/models"

// GetDefaultCategories returns the built-in category catalog, one entry per ScamCategory.
func GetDefaultCategories() []models.Category {
	return []models.Category{
		{
			Slug:        models.CategoryPhishing.Slug(),
			Name:        "Phishing",
			Description: "Mensagens e sites falsos que imitam empresas para roubar senhas e dados bancários.",
			Icon:        "🎣",
			Tips: []string{
				"Desconfie de links recebidos por SMS, e-mail ou WhatsApp",
				"Confira o endereço do site antes de digitar qualquer senha",
				"Bancos nunca pedem sua senha completa por mensagem",
			},
			RiskLevel: models.RiskHigh,
			Order:     1,
		},
		{
			Slug:        models.CategoryFakeStore.Slug(),
			Name:        "Loja Falsa",
			Description: "Lojas virtuais que anunciam produtos com preços muito abaixo do mercado e nunca entregam.",
			Icon:        "🛒",
			Tips: []string{
				"Pesquise o CNPJ e a reputação da loja antes de comprar",
				"Evite pagar apenas via Pix ou boleto em lojas desconhecidas",
				"Preços muito abaixo do mercado são um sinal de alerta",
			},
			RiskLevel: models.RiskHigh,
			Order:     2,
		},
		{
			Slug:        models.CategoryInvestment.Slug(),
			Name:        "Investimento",
			Description: "Promessas de retorno garantido, pirâmides financeiras e falsas corretoras.",
			Icon:        "📈",
			Tips: []string{
				"Não existe retorno alto garantido",
				"Verifique se a instituição é autorizada pela CVM ou pelo Banco Central",
				"Desconfie de pressa e de pedidos para indicar amigos",
			},
			RiskLevel: models.RiskCritical,
			Order:     3,
		},
		{
			Slug:        models.CategoryRomance.Slug(),
			Name:        "Golpe do Amor",
			Description: "Perfis falsos que criam relacionamentos virtuais para pedir dinheiro.",
			Icon:        "💔",
			Tips: []string{
				"Nunca envie dinheiro a quem você não conhece pessoalmente",
				"Desconfie de histórias de emergência e pedidos urgentes",
			},
			RiskLevel: models.RiskHigh,
			Order:     4,
		},
		{
			Slug:        models.CategoryJobOffer.Slug(),
			Name:        "Falsa Vaga de Emprego",
			Description: "Ofertas de trabalho que cobram taxas ou pedem dados pessoais sensíveis.",
			Icon:        "💼",
			Tips: []string{
				"Empresas sérias não cobram para contratar",
				"Desconfie de salários altos para tarefas simples",
			},
			RiskLevel: models.RiskMedium,
			Order:     5,
		},
		{
			Slug:        models.CategoryFakeSupport.Slug(),
			Name:        "Falso Suporte",
			Description: "Criminosos se passam por suporte técnico ou central do banco.",
			Icon:        "🎧",
			Tips: []string{
				"Desligue e ligue você mesmo para o número oficial",
				"Nunca instale aplicativos de acesso remoto a pedido de terceiros",
			},
			RiskLevel: models.RiskHigh,
			Order:     6,
		},
		{
			Slug:        models.CategoryPix.Slug(),
			Name:        "Golpe do Pix",
			Description: "Cobranças falsas, QR codes adulterados e pedidos de transferência urgente.",
			Icon:        "💸",
			Tips: []string{
				"Confira o nome do recebedor antes de confirmar o Pix",
				"Confirme por ligação pedidos de dinheiro feitos por mensagem",
			},
			RiskLevel: models.RiskCritical,
			Order:     7,
		},
		{
			Slug:        models.CategorySocialMedia.Slug(),
			Name:        "Redes Sociais",
			Description: "Perfis clonados, sorteios falsos e contas invadidas em redes sociais.",
			Icon:        "📱",
			Tips: []string{
				"Ative a verificação em duas etapas",
				"Desconfie de sorteios que pedem pagamento de taxa",
			},
			RiskLevel: models.RiskMedium,
			Order:     8,
		},
		{
			Slug:        models.CategoryPhone.Slug(),
			Name:        "Telefone",
			Description: "Ligações e SMS falsos de bancos, operadoras ou falsos sequestros.",
			Icon:        "📞",
			Tips: []string{
				"Não confirme dados pessoais em ligações recebidas",
				"Bloqueie e denuncie números suspeitos",
			},
			RiskLevel: models.RiskMedium,
			Order:     9,
		},
		{
			Slug:        models.CategoryOther.Slug(),
			Name:        "Outros",
			Description: "Golpes que não se encaixam nas demais categorias.",
			Icon:        "⚠️",
			Tips: []string{
				"Na dúvida, pesquise antes de pagar ou informar dados",
			},
			RiskLevel: models.RiskLow,
			Order:     10,
		},
	}
}
