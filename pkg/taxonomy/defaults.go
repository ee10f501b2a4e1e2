package taxonomy

// defaultSuperCategories is the built-in game-development taxonomy.
var defaultSuperCategories = []SuperCategory{
	{
		Name:  "Tecnologias Core",
		Color: "color-core",
		Subcategories: []string{
			"Motor de Jogo", "Motor de Física", "Linguagem de Programação", "Framework",
			"Linguagem de Script", "Arquitetura", "Padrão de Projeto", "Estrutura de Dados",
		},
	},
	{
		Name:  "Gráficos e Renderização",
		Color: "color-graficos",
		Subcategories: []string{
			"Gráficos", "Renderização", "API Gráfica", "Animação",
			"Otimização Gráfica", "Iluminação", "Gráficos 3D", "Pipeline Gráfico",
		},
	},
	{
		Name:  "Design e Gameplay",
		Color: "color-design",
		Subcategories: []string{
			"Design de Jogos", "Jogabilidade", "Simulação", "Design de IA",
			"Mecânica", "Gênero", "Design",
		},
	},
	{
		Name:  "Online e Redes",
		Color: "color-redes",
		Subcategories: []string{
			"Multiplayer", "Rede", "Serviços Online", "Segurança",
			"Backend", "Protocolo", "Netcode",
		},
	},
	{
		Name:  "Negócios e Monetização",
		Color: "color-negocios",
		Subcategories: []string{
			"Monetização", "Modelo de Negócios", "Live Service",
			"Economia Digital", "Analytics", "Métricas",
		},
	},
	{
		Name:  "Ferramentas e Middleware",
		Color: "color-ferramentas",
		Subcategories: []string{
			"Middleware", "Ferramenta de Criação", "Controle de Versão",
			"Áudio", "Ferramentas", "Biblioteca",
		},
	},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(defaultSuperCategories, DefaultColor)
}
