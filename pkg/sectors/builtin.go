package sectors

// Builtin returns the compiled-in sector dictionaries. sectors.yaml can
// override or extend any of them at startup.
func Builtin() []Sector {
	return []Sector{
		{
			ID:   "vestuario",
			Name: "Vestuário e Uniformes",
			Keywords: []string{
				"uniforme", "uniformes", "vestuário", "fardamento", "farda",
				"camiseta", "camisa", "calça", "jaleco", "avental", "colete",
				"macacão", "agasalho", "moletom", "kit escolar uniforme",
			},
			Exclusions: []string{
				"uniformização de calçada", "uniformização de pavimento",
			},
			Synonyms: map[string][]string{
				"uniforme":  {"farda", "fardamento", "vestimenta", "indumentária"},
				"camiseta":  {"camisa polo", "blusa", "malha"},
				"jaleco":    {"guarda-pó", "bata"},
				"vestuário": {"roupa", "confecção", "peça de vestuário"},
				"agasalho":  {"blusão", "jaqueta", "casaco"},
			},
		},
		{
			ID:   "alimentacao",
			Name: "Alimentação e Merenda",
			Keywords: []string{
				"merenda", "alimentação escolar", "gêneros alimentícios",
				"alimentos", "hortifruti", "cesta básica", "refeição",
				"nutrição", "pnae",
			},
			Exclusions: []string{
				"ração animal", "alimentador de papel",
			},
			Synonyms: map[string][]string{
				"merenda":              {"alimentação escolar", "refeição escolar"},
				"gêneros alimentícios": {"víveres", "produtos alimentícios"},
				"cesta básica":         {"kit alimentação", "cesta de alimentos"},
			},
		},
		{
			ID:   "informatica",
			Name: "Informática e Tecnologia",
			Keywords: []string{
				"computador", "computadores", "notebook", "servidor",
				"software", "licença de software", "impressora", "monitor",
				"equipamento de informática", "rede de dados", "datacenter",
			},
			Exclusions: []string{
				"monitor escolar", "monitor de transporte",
			},
			Synonyms: map[string][]string{
				"computador": {"desktop", "microcomputador", "estação de trabalho"},
				"notebook":   {"laptop", "computador portátil"},
				"software":   {"sistema informatizado", "solução de software", "aplicativo"},
			},
		},
		{
			ID:   "limpeza",
			Name: "Limpeza e Conservação",
			Keywords: []string{
				"limpeza", "higienização", "material de limpeza",
				"conservação predial", "serviços de limpeza", "zeladoria",
				"detergente", "desinfetante",
			},
			Exclusions: []string{
				"limpeza de fossa", "limpeza urbana de vias",
			},
			Synonyms: map[string][]string{
				"limpeza":      {"asseio", "higienização"},
				"desinfetante": {"saneante", "germicida"},
			},
		},
		{
			ID:   "construcao",
			Name: "Construção e Obras",
			Keywords: []string{
				"obra", "obras", "construção", "reforma", "pavimentação",
				"engenharia", "edificação", "drenagem", "terraplenagem",
				"recapeamento",
			},
			Synonyms: map[string][]string{
				"obra":         {"execução de obra", "empreitada"},
				"reforma":      {"requalificação", "revitalização", "melhoria predial"},
				"pavimentação": {"asfaltamento", "recapeamento asfáltico"},
			},
		},
		{
			ID:   "saude",
			Name: "Saúde e Medicamentos",
			Keywords: []string{
				"medicamento", "medicamentos", "material hospitalar",
				"equipamento médico", "insumos de saúde", "farmácia básica",
				"material médico-hospitalar", "odontológico",
			},
			Synonyms: map[string][]string{
				"medicamento":         {"fármaco", "remédio", "produto farmacêutico"},
				"material hospitalar": {"material médico", "insumo hospitalar"},
				"equipamento médico":  {"equipamento hospitalar", "aparelho médico"},
			},
		},
	}
}
