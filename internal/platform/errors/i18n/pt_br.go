package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeDieInvalidSideCount: "Um dado deve ter entre {{.Min}} e {{.Max}} lados, recebido {{.Sides}}",
		CodeSeedUnavailable:     "Não foi possível gerar a semente aleatória",
	},
}
