package usecase

import "agroflow-backend/internal/domain"

var newsImages = []string{
	"https://images.unsplash.com/photo-1502086223501-09b5e02ef4b9?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1592991551342-00a92e5d41da?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1627920762843-0c86f7d1b2d7?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1625246333007-57d5d392c8e4?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1586779490817-6e7f0e6d9e3d?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=600&q=80",
}

// newsCatalog is the curated water-in-agriculture feed, Portugal first.
// Images are assigned by position when the feed is built.
var newsCatalog = []domain.NewsItem{
	{
		Title:       "Setor Agrícola Responsável por 75% da Água Utilizada em Portugal",
		Description: "Estudo Gulbenkian revela desperdício massivo na irrigação; necessidade de modernização urgente para reduzir perdas de 35%.",
		Link:        "https://visao.sapo.pt/visao-verde/ambiente/2021-03-18-setor-agricola-responsavel-por-75-da-agua-utilizada-em-portugal-estudo/",
		Source:      "Visão",
		Timestamp:   "2021-03-18T00:00:00Z",
	},
	{
		Title:       "Desafios Hídricos na Agricultura Portuguesa",
		Description: "Análise técnica mostra que agricultura consome 75% da água, com perdas de 37,5% em sistemas antigos.",
		Link:        "https://www.espaco-visual.pt/desafios-hidricos-agricultura-portuguesa/",
		Source:      "Espaço Visual",
		Timestamp:   "2021-06-15T00:00:00Z",
	},
	{
		Title:       "Uso da Água em Portugal: Estudo Gulbenkian",
		Description: "Agricultura usa 75% da água doce; desperdício por evaporação chega a 50% em regas ineficientes.",
		Link:        "https://gulbenkian.pt/wp-content/uploads/2020/06/Uso-da-%C3%A1gua-em-Portugal_Estudo-Gulbenkian.pdf",
		Source:      "Fundação Gulbenkian",
		Timestamp:   "2021-06-01T00:00:00Z",
	},
	{
		Title:       "Consumo e Desperdício de Água na Agricultura",
		Description: "80% da água captada é desperdiçada; setor agrícola representa 70% do consumo com perdas de 50%.",
		Link:        "https://acorus.pt/blog/consumo-e-desperdicio-de-agua",
		Source:      "Acorus",
		Timestamp:   "2022-02-10T00:00:00Z",
	},
	{
		Title:       "Regadio Usa 75% da Água e Desperdiça Um Terço, Revela APA",
		Description: "Em ano de seca, sistemas antigos perdem 35% da água no transporte; modernização é essencial.",
		Link:        "https://www.confagri.pt/seca-regadio-usa-75-da-agua-portugal-desperdica-um-terco-revela-apa/",
		Source:      "Confagri",
		Timestamp:   "2022-07-13T00:00:00Z",
	},
	{
		Title:       "Sector Agrícola Responsável por 75% do Uso de Água",
		Description: "Incluindo pecuária, o setor desperdiça devido a métodos ultrapassados; urgência em práticas sustentáveis.",
		Link:        "https://www.avp.org.pt/sector-agricola-incluindo-pecuaria-responsavel-por-75-uso-agua/",
		Source:      "Associação Vegetariana Portuguesa",
		Timestamp:   "2022-05-28T00:00:00Z",
	},
	{
		Title:       "Perdas nas Redes de Água Custam Quase 152 Milhões",
		Description: "Portugal desperdiçou 191 milhões de m³ em 2023; impacto severo na agricultura.",
		Link:        "https://cnnportugal.iol.pt/ersar/abastecimento/perdas-nas-redes-de-agua-custam-quase-152-milhoes/20250310/67cea3c8d34e3f0bae9b6bfc",
		Source:      "CNN Portugal",
		Timestamp:   "2023-03-10T00:00:00Z",
	},
	{
		Title:       "Escassez de Água: Os Setores com Maior Consumo",
		Description: "Agricultura usa 70% da água; agravado por secas recentes.",
		Link:        "https://rea.apambiente.pt/content/escassez-de-%C3%A1gua",
		Source:      "REA - APA",
		Timestamp:   "2023-05-20T00:00:00Z",
	},
	{
		Title:       "Agricultura e Golfe Reduzem 69% Consumo de Água no Algarve",
		Description: "Esforços conjuntos cortam desperdício, mas perdas em regadio persistem em 25%.",
		Link:        "https://www.jornaldenegocios.pt/economia/ambiente/detalhe/agricultura-e-golfe-reduzem-em-69-consumo-de-agua-no-algarve-em-fevereiro",
		Source:      "Jornal de Negócios",
		Timestamp:   "2024-03-07T00:00:00Z",
	},
	{
		Title:       "Perdas de Água em Portugal Podem Custar 604 Milhões até 2030",
		Description: "184 mil milhões de litros perdidos anualmente; foco na agricultura.",
		Link:        "https://www.jornaldenegocios.pt/economia/ambiente/detalhe/perdas-de-agua-em-portugal-podem-custar-604-milhoes-ate-2030",
		Source:      "Jornal de Negócios",
		Timestamp:   "2024-02-29T00:00:00Z",
	},
	{
		Title:       "Portugal Under Water Stress: Agriculture Consumes 75%",
		Description: "Métodos tradicionais ineficientes; adoção de gotejamento essencial.",
		Link:        "https://clsbe.lisboa.ucp.pt/en/news/portugal-under-water-stress",
		Source:      "Católica Lisbon School of Business & Economics",
		Timestamp:   "2024-02-28T00:00:00Z",
	},
	{
		Title:       "Escassez de Água: Desafios e Soluções na Agricultura",
		Description: "Mudanças climáticas causam desperdício; irrigação eficiente como solução.",
		Link:        "https://agrozim.pt/escassez-de-agua-desafios-e-solucoes/",
		Source:      "Agrozim",
		Timestamp:   "2023-07-07T00:00:00Z",
	},
	{
		Title:       "Desperdício de Água no Planeta: Causas e Consequências",
		Description: "Agricultura global desperdiça 70% da água doce; FAO alerta para crise.",
		Link:        "https://aguasesaneamento.pt/acervo-tecnico/desperdicio-de-agua-no-planeta-causas-e-consequencias/",
		Source:      "Águas e Saneamento",
		Timestamp:   "2021-04-22T00:00:00Z",
	},
	{
		Title:       "FAO: Global Water Waste in Agriculture Reaches 60%",
		Description: "Relatório 2023: Perdas em irrigação ineficiente; soluções para Ásia e África.",
		Link:        "https://www.fao.org/newsroom/detail/fao-report-water-waste-agriculture-2023/en",
		Source:      "FAO",
		Timestamp:   "2023-03-22T00:00:00Z",
	},
	{
		Title:       "World Water Development Report 2024: Agriculture Wastes 35%",
		Description: "ONU: 70% da água doce para agricultura; 35% perdido por evaporação.",
		Link:        "https://www.unwater.org/publications/un-world-water-development-report-2024",
		Source:      "UN Water",
		Timestamp:   "2024-03-22T00:00:00Z",
	},
	{
		Title:       "EU Water Reuse Regulation: Tackling Agricultural Waste",
		Description: "Regulamento 2020/741 promove reuso para irrigação; reduz perdas em 20%.",
		Link:        "https://environment.ec.europa.eu/topics/water/water-reuse_en",
		Source:      "European Commission",
		Timestamp:   "2023-06-01T00:00:00Z",
	},
	{
		Title:       "Global Agricultural Water Use: 70% of Freshwater, 30% Wasted",
		Description: "Relatório World Bank 2022: Foco em eficiência para combater seca.",
		Link:        "https://www.worldbank.org/en/topic/water/publication/water-in-agriculture",
		Source:      "World Bank",
		Timestamp:   "2022-09-15T00:00:00Z",
	},
	{
		Title:       "Water Scarcity in Agriculture: Global Challenges 2021",
		Description: "FAO: Desperdício por métodos obsoletos afeta 2.4 bilhões de pessoas.",
		Link:        "https://www.fao.org/3/cb6240en/cb6240en.pdf",
		Source:      "FAO",
		Timestamp:   "2021-10-20T00:00:00Z",
	},
}
