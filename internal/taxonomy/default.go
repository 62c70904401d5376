package taxonomy

import "rolematch/internal/models"

// Default returns the built-in catalog of canonical roles that ships with rolematch.
// Aliases cover common abbreviations and English, German, French, Spanish and
// Dutch spellings.
func Default() []models.TaxonomyEntry {
	return []models.TaxonomyEntry{
		// Engineering
		{
			RoleFamily: "Engineering", CanonicalTitle: "Software Engineer", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"software engineer", "software developer", "developer", "programmer", "softwareentwickler", "développeur logiciel", "desarrollador de software", "ontwikkelaar"},
			Description: "Designs, builds and maintains software systems",
		},
		{
			RoleFamily: "Engineering", CanonicalTitle: "Software Engineer", SeniorityLevel: models.SeniorityJunior,
			Aliases:     []string{"junior software engineer", "junior developer", "jr developer", "jr. developer", "graduate engineer", "junior entwickler"},
			Description: "Entry-level software engineer",
		},
		{
			RoleFamily: "Engineering", CanonicalTitle: "Software Engineer", SeniorityLevel: models.SenioritySenior,
			Aliases:     []string{"senior software engineer", "senior developer", "sr developer", "sr. developer", "sr software engineer", "senior entwickler", "développeur senior"},
			Description: "Experienced software engineer owning significant components",
		},
		{
			RoleFamily: "Engineering", CanonicalTitle: "Staff Engineer", SeniorityLevel: models.SeniorityStaff,
			Aliases:     []string{"staff engineer", "staff software engineer", "principal engineer", "principal software engineer"},
			Description: "Senior individual contributor with cross-team technical scope",
		},
		{
			RoleFamily: "Engineering", CanonicalTitle: "Engineering Manager", SeniorityLevel: models.SeniorityManager,
			Aliases:     []string{"engineering manager", "software engineering manager", "em", "dev manager", "development manager", "teamleiter entwicklung"},
			Description: "Manages a team of engineers",
		},
		{
			RoleFamily: "Engineering", CanonicalTitle: "Chief Technology Officer", SeniorityLevel: models.SeniorityCLevel,
			Aliases:     []string{"cto", "chief technology officer", "chief technical officer", "directeur technique"},
			Description: "Executive responsible for technology strategy",
		},
		// Data
		{
			RoleFamily: "Data", CanonicalTitle: "Data Scientist", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"data scientist", "datenwissenschaftler", "scientifique des données", "científico de datos"},
			Description: "Builds statistical and machine learning models",
		},
		{
			RoleFamily: "Data", CanonicalTitle: "Data Analyst", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"data analyst", "business intelligence analyst", "bi analyst", "datenanalyst", "analista de datos"},
			Description: "Analyses data and produces reporting",
		},
		// Product & Design
		{
			RoleFamily: "Product", CanonicalTitle: "Product Manager", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"product manager", "pm", "product owner", "produktmanager", "chef de produit"},
			Description: "Owns product direction and roadmap for an area",
		},
		{
			RoleFamily: "Design", CanonicalTitle: "Product Designer", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"product designer", "ux designer", "ui designer", "ux/ui designer", "interaction designer"},
			Description: "Designs user experiences and interfaces",
		},
		// Sales
		{
			RoleFamily: "Sales", CanonicalTitle: "Sales Development Representative", SeniorityLevel: models.SeniorityJunior,
			Aliases:     []string{"sdr", "sales development representative", "bdr", "business development representative"},
			Description: "Generates and qualifies outbound pipeline",
		},
		{
			RoleFamily: "Sales", CanonicalTitle: "Account Executive", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"account executive", "ae", "sales rep", "sales representative", "vertriebsmitarbeiter", "commercial", "ejecutivo de cuentas"},
			Description: "Closes new business",
		},
		{
			RoleFamily: "Sales", CanonicalTitle: "Head of Sales", SeniorityLevel: models.SeniorityDirector,
			Aliases:     []string{"head of sales", "sales director", "director of sales", "vertriebsleiter", "directeur commercial", "director de ventas"},
			Description: "Leads the sales organisation",
		},
		// Marketing
		{
			RoleFamily: "Marketing", CanonicalTitle: "Marketing Manager", SeniorityLevel: models.SeniorityManager,
			Aliases:     []string{"marketing manager", "marketingmanager", "responsable marketing", "gerente de marketing"},
			Description: "Plans and runs marketing programmes",
		},
		// Customer Success
		{
			RoleFamily: "Customer Success", CanonicalTitle: "Customer Success Manager", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"customer success manager", "csm", "account manager", "kundenbetreuer"},
			Description: "Retains and grows existing customers",
		},
		// Finance
		{
			RoleFamily: "Finance", CanonicalTitle: "Financial Analyst", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"financial analyst", "finance analyst", "fp&a analyst", "finanzanalyst", "analyste financier"},
			Description: "Budgeting, forecasting and financial reporting",
		},
		{
			RoleFamily: "Finance", CanonicalTitle: "Chief Financial Officer", SeniorityLevel: models.SeniorityCLevel,
			Aliases:     []string{"cfo", "chief financial officer", "finanzvorstand", "directeur financier", "director financiero"},
			Description: "Executive responsible for finance",
		},
		// People
		{
			RoleFamily: "People", CanonicalTitle: "HR Business Partner", SeniorityLevel: models.SenioritySenior,
			Aliases:     []string{"hr business partner", "hrbp", "people partner", "personalreferent"},
			Description: "Partners with leadership on people topics",
		},
		{
			RoleFamily: "People", CanonicalTitle: "Recruiter", SeniorityLevel: models.SeniorityMid,
			Aliases:     []string{"recruiter", "talent acquisition specialist", "technical recruiter", "recruteur", "reclutador"},
			Description: "Sources and hires candidates",
		},
		// Operations & Executive
		{
			RoleFamily: "Operations", CanonicalTitle: "Operations Manager", SeniorityLevel: models.SeniorityManager,
			Aliases:     []string{"operations manager", "ops manager", "betriebsleiter", "responsable des opérations"},
			Description: "Runs day-to-day business operations",
		},
		{
			RoleFamily: "Executive", CanonicalTitle: "Chief Executive Officer", SeniorityLevel: models.SeniorityCLevel,
			Aliases:     []string{"ceo", "chief executive officer", "geschäftsführer", "managing director", "directeur général", "director general"},
			Description: "Top executive of the company",
		},
		{
			RoleFamily: "Executive", CanonicalTitle: "VP of Engineering", SeniorityLevel: models.SeniorityVP,
			Aliases:     []string{"vp engineering", "vp of engineering", "vice president engineering", "vice president of engineering"},
			Description: "Leads the engineering organisation",
		},
	}
}
