package catalog

import "studio_orders/internal/domain/entities"

// Seed data for the studio offering. This is reference data, not
// configuration: it changes through code review, the same way page content
// does.

func seedCategories() []entities.ServiceCategory {
	return []entities.ServiceCategory{
		{
			ID:           "web-development",
			Name:         entities.Localized{"en": "Web Development", "ru": "Веб-разработка"},
			Description:  entities.Localized{"en": "Marketing sites, web apps and storefronts", "ru": "Маркетинговые сайты, веб-приложения и витрины"},
			DisplayOrder: 1,
			Active:       true,
		},
		{
			ID:           "interactive-3d",
			Name:         entities.Localized{"en": "3D & Interactive", "ru": "3D и интерактив"},
			Description:  entities.Localized{"en": "Data visualization and interactive 3D experiences", "ru": "Визуализация данных и интерактивные 3D-сцены"},
			DisplayOrder: 2,
			Active:       true,
		},
		{
			ID:           "backend",
			Name:         entities.Localized{"en": "Backend & Infrastructure", "ru": "Бэкенд и инфраструктура"},
			Description:  entities.Localized{"en": "APIs, integrations and cloud infrastructure", "ru": "API, интеграции и облачная инфраструктура"},
			DisplayOrder: 3,
			Active:       true,
		},
		{
			ID:           "consulting",
			Name:         entities.Localized{"en": "Consulting", "ru": "Консалтинг"},
			Description:  entities.Localized{"en": "Audits, architecture reviews and technical advisory", "ru": "Аудиты, ревью архитектуры и технические консультации"},
			DisplayOrder: 4,
			Active:       true,
		},
	}
}

func seedServices() []entities.Service {
	return []entities.Service{
		{
			ID:               "landing-page",
			CategoryID:       "web-development",
			Name:             entities.Localized{"en": "Landing Page", "ru": "Лендинг"},
			ShortDescription: entities.Localized{"en": "A fast, conversion-focused single page site", "ru": "Быстрый одностраничный сайт, заточенный под конверсию"},
			Features:         []string{"Responsive layout", "SEO basics", "Analytics wiring"},
			Deliverables:     []string{"Deployed site", "Source repository", "Editing guide"},
			Timeline:         "1-2 weeks",
			Price:            entities.PriceRange{Min: 800, Max: 2000, Currency: "USD"},
			Complexity:       entities.ComplexityBasic,
			Tags:             []string{"web", "landing", "marketing"},
			Popular:          true,
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 10, SupportLevel: "email", TeamSize: 1},
		},
		{
			ID:               "corporate-site",
			CategoryID:       "web-development",
			Name:             entities.Localized{"en": "Corporate Website", "ru": "Корпоративный сайт"},
			ShortDescription: entities.Localized{"en": "Multi-page site with CMS-backed content", "ru": "Многостраничный сайт с контентом на CMS"},
			Features:         []string{"CMS integration", "Localization", "Blog"},
			Deliverables:     []string{"Deployed site", "CMS setup", "Editor training session"},
			Timeline:         "3-5 weeks",
			Price:            entities.PriceRange{Min: 3000, Max: 8000, Currency: "USD"},
			Complexity:       entities.ComplexityAdvanced,
			Tags:             []string{"web", "cms", "corporate"},
			Popular:          true,
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 28, SupportLevel: "priority", TeamSize: 2},
		},
		{
			ID:               "ecommerce-storefront",
			CategoryID:       "web-development",
			Name:             entities.Localized{"en": "E-commerce Storefront", "ru": "Интернет-магазин"},
			ShortDescription: entities.Localized{"en": "Catalog, cart and checkout on a headless storefront", "ru": "Каталог, корзина и оформление заказа на headless-витрине"},
			Features:         []string{"Product catalog", "Payment integration", "Order management"},
			Deliverables:     []string{"Deployed storefront", "Admin handbook"},
			Timeline:         "6-10 weeks",
			Price:            entities.PriceRange{Min: 8000, Max: 20000, Currency: "USD"},
			Complexity:       entities.ComplexityEnterprise,
			Tags:             []string{"web", "ecommerce", "payments"},
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 60, SupportLevel: "dedicated", TeamSize: 3},
		},
		{
			ID:               "data-viz-3d",
			CategoryID:       "interactive-3d",
			Name:             entities.Localized{"en": "3D Data Visualization", "ru": "3D-визуализация данных"},
			ShortDescription: entities.Localized{"en": "Interactive WebGL scenes driven by live data", "ru": "Интерактивные WebGL-сцены на живых данных"},
			Features:         []string{"WebGL rendering", "Live data feeds", "Camera choreography"},
			Deliverables:     []string{"Embeddable scene", "Data adapter", "Performance report"},
			Timeline:         "4-6 weeks",
			Price:            entities.PriceRange{Min: 4000, Max: 12000, Currency: "USD"},
			Complexity:       entities.ComplexityAdvanced,
			Tags:             []string{"3d", "webgl", "visualization"},
			Popular:          true,
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 35, SupportLevel: "priority", TeamSize: 2},
		},
		{
			ID:               "product-configurator",
			CategoryID:       "interactive-3d",
			Name:             entities.Localized{"en": "3D Product Configurator", "ru": "3D-конфигуратор продукта"},
			ShortDescription: entities.Localized{"en": "Customers assemble and preview a product in the browser", "ru": "Покупатель собирает и просматривает продукт прямо в браузере"},
			Features:         []string{"Model pipeline", "Material presets", "Shareable configurations"},
			Deliverables:     []string{"Configurator module", "Asset pipeline docs"},
			Timeline:         "8-12 weeks",
			Price:            entities.PriceRange{Min: 12000, Max: 30000, Currency: "USD"},
			Complexity:       entities.ComplexityEnterprise,
			Tags:             []string{"3d", "configurator", "ecommerce"},
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 75, SupportLevel: "dedicated", TeamSize: 3},
		},
		{
			ID:               "api-integration",
			CategoryID:       "backend",
			Name:             entities.Localized{"en": "API Design & Integration", "ru": "Проектирование и интеграция API"},
			ShortDescription: entities.Localized{"en": "REST APIs and third-party service integrations", "ru": "REST API и интеграции со сторонними сервисами"},
			Features:         []string{"API design", "Third-party integrations", "Documentation"},
			Deliverables:     []string{"API service", "OpenAPI spec", "Integration tests"},
			Timeline:         "2-4 weeks",
			Price:            entities.PriceRange{Min: 2500, Max: 7000, Currency: "USD"},
			Complexity:       entities.ComplexityAdvanced,
			Tags:             []string{"backend", "api", "integration"},
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 21, SupportLevel: "priority", TeamSize: 1},
		},
		{
			ID:               "cloud-setup",
			CategoryID:       "backend",
			Name:             entities.Localized{"en": "Cloud Infrastructure Setup", "ru": "Настройка облачной инфраструктуры"},
			ShortDescription: entities.Localized{"en": "CI/CD, monitoring and managed cloud environments", "ru": "CI/CD, мониторинг и управляемые облачные окружения"},
			Features:         []string{"Infrastructure as code", "CI/CD pipelines", "Monitoring"},
			Deliverables:     []string{"Provisioned environments", "Runbooks"},
			Timeline:         "2-3 weeks",
			Price:            entities.PriceRange{Min: 3000, Max: 9000, Currency: "USD"},
			Complexity:       entities.ComplexityAdvanced,
			Tags:             []string{"backend", "devops", "cloud"},
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 18, SupportLevel: "priority", TeamSize: 1},
		},
		{
			ID:               "tech-audit",
			CategoryID:       "consulting",
			Name:             entities.Localized{"en": "Technical Audit", "ru": "Технический аудит"},
			ShortDescription: entities.Localized{"en": "Fixed-scope review of an existing codebase and stack", "ru": "Ревью существующей кодовой базы и стека с фиксированным объёмом"},
			Features:         []string{"Code review", "Performance analysis", "Security checklist"},
			Deliverables:     []string{"Audit report", "Prioritized action plan"},
			Timeline:         "1 week",
			Price:            entities.PriceRange{Min: 150, Max: 150, Currency: "USD"},
			Complexity:       entities.ComplexityBasic,
			Tags:             []string{"consulting", "audit", "review"},
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 7, SupportLevel: "email", TeamSize: 1},
		},
		{
			ID:               "architecture-advisory",
			CategoryID:       "consulting",
			Name:             entities.Localized{"en": "Architecture Advisory", "ru": "Архитектурное сопровождение"},
			ShortDescription: entities.Localized{"en": "Ongoing architecture guidance for a product team", "ru": "Постоянное архитектурное сопровождение продуктовой команды"},
			Features:         []string{"Design reviews", "Roadmap input", "Team mentoring"},
			Deliverables:     []string{"Monthly review notes", "Decision records"},
			Timeline:         "ongoing",
			Price:            entities.PriceRange{Min: 2000, Max: 6000, Currency: "USD"},
			Complexity:       entities.ComplexityAdvanced,
			Tags:             []string{"consulting", "architecture", "mentoring"},
			Customizable:     true,
			Active:           true,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 30, SupportLevel: "dedicated", TeamSize: 1},
		},
		{
			ID:               "legacy-migration",
			CategoryID:       "backend",
			Name:             entities.Localized{"en": "Legacy Migration", "ru": "Миграция легаси"},
			ShortDescription: entities.Localized{"en": "Incremental migration of legacy systems to a modern stack", "ru": "Поэтапная миграция легаси-систем на современный стек"},
			Features:         []string{"Strangler-fig rollout", "Data migration", "Zero-downtime cutover"},
			Deliverables:     []string{"Migrated system", "Cutover plan", "Rollback procedures"},
			Timeline:         "10-16 weeks",
			Price:            entities.PriceRange{Min: 15000, Max: 40000, Currency: "USD"},
			Complexity:       entities.ComplexityEnterprise,
			Tags:             []string{"backend", "migration", "legacy"},
			Active:           false,
			Delivery:         entities.DeliveryInfo{EstimatedDays: 100, SupportLevel: "dedicated", TeamSize: 4},
		},
	}
}
