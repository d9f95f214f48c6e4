package transport

// Catalog maps canonical method names to URL path prefixes. It is static,
// process-wide configuration with no behavior attached: composing a URL and
// issuing the request is Client's job.
//
// Names mirror the API's own grouping (account, char, corp, eve, map,
// server) and equal the path minus its leading slash.
var Catalog = map[string]string{
	"account/Characters":    "/account/Characters",
	"account/AccountStatus": "/account/AccountStatus",

	"char/AccountBalance":         "/char/AccountBalance",
	"char/AssetList":              "/char/AssetList",
	"char/CalendarEventAttendees": "/char/CalendarEventAttendees",
	"char/CharacterSheet":         "/char/CharacterSheet",
	"char/ContactList":            "/char/ContactList",
	"char/ContactNotifications":   "/char/ContactNotifications",
	"char/Contracts":              "/char/Contracts",
	"char/ContractItems":          "/char/ContractItems",
	"char/ContractBids":           "/char/ContractBids",
	"char/FacWarStats":            "/char/FacWarStats",
	"char/IndustryJobs":           "/char/IndustryJobs",
	"char/Killlog":                "/char/Killlog",
	"char/MailBodies":             "/char/MailBodies",
	"char/MailingLists":           "/char/MailingLists",
	"char/MailMessages":           "/char/MailMessages",
	"char/MarketOrders":           "/char/MarketOrders",
	"char/Medals":                 "/char/Medals",
	"char/Notifications":          "/char/Notifications",
	"char/NotificationTexts":      "/char/NotificationTexts",
	"char/Research":               "/char/Research",
	"char/SkillInTraining":        "/char/SkillInTraining",
	"char/SkillQueue":             "/char/SkillQueue",
	"char/Standings":              "/char/Standings",
	"char/UpcomingCalendarEvents": "/char/UpcomingCalendarEvents",
	"char/WalletJournal":          "/char/WalletJournal",
	"char/WalletTransactions":     "/char/WalletTransactions",

	"corp/AccountBalance":       "/corp/AccountBalance",
	"corp/AssetList":            "/corp/AssetList",
	"corp/ContactList":          "/corp/ContactList",
	"corp/ContainerLog":         "/corp/ContainerLog",
	"corp/Contracts":            "/corp/Contracts",
	"corp/ContractItems":        "/corp/ContractItems",
	"corp/ContractBids":         "/corp/ContractBids",
	"corp/CorporationSheet":     "/corp/CorporationSheet",
	"corp/FacWarStats":          "/corp/FacWarStats",
	"corp/IndustryJobs":         "/corp/IndustryJobs",
	"corp/Killlog":              "/corp/Killlog",
	"corp/MarketOrders":         "/corp/MarketOrders",
	"corp/Medals":               "/corp/Medals",
	"corp/MemberMedals":         "/corp/MemberMedals",
	"corp/MemberSecurity":       "/corp/MemberSecurity",
	"corp/MemberSecurityLog":    "/corp/MemberSecurityLog",
	"corp/MemberTracking":       "/corp/MemberTracking",
	"corp/OutpostList":          "/corp/OutpostList",
	"corp/OutpostServiceDetail": "/corp/OutpostServiceDetail",
	"corp/Shareholders":         "/corp/Shareholders",
	"corp/Standings":            "/corp/Standings",
	"corp/StarbaseDetail":       "/corp/StarbaseDetail",
	"corp/StarbaseList":         "/corp/StarbaseList",
	"corp/Titles":               "/corp/Titles",
	"corp/WalletJournal":        "/corp/WalletJournal",
	"corp/WalletTransactions":   "/corp/WalletTransactions",

	"eve/AllianceList":           "/eve/AllianceList",
	"eve/CertificateTree":        "/eve/CertificateTree",
	"eve/CharacterID":            "/eve/CharacterID",
	"eve/CharacterInfo":          "/eve/CharacterInfo",
	"eve/CharacterName":          "/eve/CharacterName",
	"eve/ConquerableStationList": "/eve/ConquerableStationList",
	"eve/ErrorList":              "/eve/ErrorList",
	"eve/FacWarStats":            "/eve/FacWarStats",
	"eve/FacWarTopStats":         "/eve/FacWarTopStats",
	"eve/RefTypes":               "/eve/RefTypes",
	"eve/SkillTree":              "/eve/SkillTree",

	"map/FacWarSystems": "/map/FacWarSystems",
	"map/Jumps":         "/map/Jumps",
	"map/Kills":         "/map/Kills",
	"map/Sovereignty":   "/map/Sovereignty",

	"server/ServerStatus": "/server/ServerStatus",
}

// Lookup resolves a catalog name (e.g. "server/ServerStatus") to a Method.
func Lookup(name string) (Method, bool) {
	path, ok := Catalog[name]
	if !ok {
		return Method{}, false
	}
	return Method{Path: path}, true
}
