package headers

// Canonical field identifiers for compensation imports.
const (
	FieldEmployeeID     = "employee_id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldFullName       = "full_name"
	FieldEmail          = "email"
	FieldJobTitle       = "job_title"
	FieldDepartment     = "department"
	FieldLocation       = "location"
	FieldCountry        = "country"
	FieldBaseSalary     = "base_salary"
	FieldBonus          = "bonus"
	FieldEquity         = "equity"
	FieldCurrency       = "currency"
	FieldStartDate      = "start_date"
	FieldGender         = "gender"
	FieldManager        = "manager"
	FieldEmploymentType = "employment_type"
)

// DefaultFieldSynonyms returns the built-in multilingual synonym dictionary
// (English, German, French, Spanish, Dutch).
func DefaultFieldSynonyms() FieldSynonyms {
	return FieldSynonyms{
		FieldEmployeeID:     {"employee id", "employee number", "emp id", "staff id", "personnel number", "personalnummer", "matricule", "id empleado", "numero de empleado", "personeelsnummer"},
		FieldFirstName:      {"first name", "firstname", "given name", "forename", "vorname", "prénom", "nombre", "voornaam"},
		FieldLastName:       {"last name", "lastname", "surname", "family name", "nachname", "nom de famille", "apellido", "achternaam"},
		FieldFullName:       {"name", "full name", "employee name", "nom complet", "nombre completo", "vollständiger name", "naam"},
		FieldEmail:          {"email", "e-mail", "email address", "e-mail address", "work email", "e-mail-adresse", "courriel", "adresse e-mail", "correo electrónico"},
		FieldJobTitle:       {"job title", "title", "position", "role", "job", "jobtitel", "stellenbezeichnung", "intitulé du poste", "poste", "puesto", "cargo", "functie"},
		FieldDepartment:     {"department", "dept", "team", "division", "abteilung", "département", "service", "departamento", "afdeling"},
		FieldLocation:       {"location", "office", "city", "work location", "standort", "lieu", "ville", "ubicación", "ciudad", "locatie"},
		FieldCountry:        {"country", "land", "pays", "país"},
		FieldBaseSalary:     {"base salary", "salary", "base pay", "annual salary", "grundgehalt", "gehalt", "salaire de base", "salaire", "salario base", "salario", "basissalaris", "salaris"},
		FieldBonus:          {"bonus", "annual bonus", "variable pay", "prime", "bonificación", "bono"},
		FieldEquity:         {"equity", "stock", "rsu", "stock options", "aktien", "actions", "acciones"},
		FieldCurrency:       {"currency", "ccy", "währung", "devise", "moneda", "valuta"},
		FieldStartDate:      {"start date", "hire date", "date of hire", "joining date", "eintrittsdatum", "date d'embauche", "fecha de inicio", "fecha de ingreso", "startdatum"},
		FieldGender:         {"gender", "sex", "geschlecht", "genre", "sexe", "género", "geslacht"},
		FieldManager:        {"manager", "reports to", "line manager", "supervisor", "vorgesetzter", "responsable hiérarchique", "jefe", "leidinggevende"},
		FieldEmploymentType: {"employment type", "contract type", "vertragsart", "type de contrat", "tipo de contrato", "dienstverband"},
	}
}
