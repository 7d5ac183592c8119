package config

// Defaults returns the built-in configuration: a full search for recent
// entry-level tech roles across the German boards and a set of large
// German employers. A config file only needs to override what differs.
func Defaults() *Config {
	return &Config{
		HoursBack: 24,
		OutputDir: "output",
		Filter: FilterConfig{
			LevelMarkers: []string{
				"junior",
				"entry level",
				"entry-level",
				"graduate",
				"trainee",
				"einstieg",
				"anfänger",
				"berufseinsteiger",
				"einstiegsposition",
				"starter",
				"career starter",
				"recent graduate",
				"no experience",
				"erfahrung nicht erforderlich",
			},
			TechnicalKeywords: []string{
				"ai",
				"artificial intelligence",
				"machine learning",
				"ml",
				"data science",
				"data scientist",
				"python",
				"software development",
				"software engineer",
				"sde",
				"backend",
				"frontend",
				"fullstack",
				"web development",
				"neural network",
				"deep learning",
				"nlp",
				"computer vision",
				"tensorflow",
				"pytorch",
				"scikit-learn",
				"data analysis",
				"analytics",
			},
			GermanLocations: []string{
				"Baden-Württemberg", "Bayern", "Berlin", "Brandenburg", "Bremen",
				"Hamburg", "Hessen", "Mecklenburg-Vorpommern", "Niedersachsen",
				"Nordrhein-Westfalen", "Rheinland-Pfalz", "Saarland", "Sachsen",
				"Sachsen-Anhalt", "Schleswig-Holstein", "Thüringen",
				"Germany", "Deutschland", "DE",
			},
		},
		HTTP: HTTPConfig{
			TimeoutSec: 30,
			MinDelayMS: 2000,
			MaxDelayMS: 5000,
			MaxRetries: 3,
		},
		Cache: CacheConfig{
			Enabled:  false,
			RedisURL: "redis://localhost:6379",
			TTLHours: 1,
		},
		Boards: map[string]BoardConfig{
			"linkedin": {
				Queries:  []string{"AI Engineer Germany", "Data Scientist Germany", "ML Engineer Germany"},
				Location: "Germany",
			},
			"stepstone": {
				Queries: []string{"Junior AI Engineer", "Data Scientist Einstieg", "ML Engineer Anfänger"},
			},
			"xing": {
				Queries: []string{"Junior Softwareentwickler", "AI Engineer", "Data Scientist"},
			},
			"indeed": {
				Queries: []string{"Junior Software Engineer", "Data Scientist Entry Level", "ML Engineer"},
			},
			"google": {
				Queries: []string{"AI Engineer", "Data Scientist", "ML Engineer"},
			},
		},
		Companies: map[string]string{
			"SAP":              "https://careers.sap.com/",
			"Siemens":          "https://jobs.siemens.com/",
			"Deutsche Telekom": "https://career.telekom.com/",
			"BMW":              "https://www.bmw-group.com/en/careers.html",
			"Volkswagen":       "https://www.volkswagen.com/careers",
			"Deutsche Börse":   "https://careers.deutsche-boerse.com",
			"Commerzbank":      "https://careers.commerzbank.com",
			"Allianz":          "https://www.allianz.com/careers",
			"Continental":      "https://jobs.continental.com",
			"Bosch":            "https://jobs.bosch.com",
			"Bayer":            "https://careers.bayer.com",
			"Zalando":          "https://careers.zalando.com",
			"Delivery Hero":    "https://careers.deliveryhero.com",
			"N26":              "https://careers.n26.com",
			"Celonis":          "https://careers.celonis.com",
			"Flixbus":          "https://careers.flixbus.com",
			"Wolt":             "https://careers.wolt.com/",
		},
	}
}
