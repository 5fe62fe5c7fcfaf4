// Package knowledge holds the static per-language symptom vocabulary
// and the condition catalog that drive rule-based analysis. All tables
// are built once at init and never mutated at runtime.
package knowledge

import "regexp"

// DefaultLanguage is used when a requested language has no pack.
const DefaultLanguage = "en"

// GenericBodyPart is the placeholder body part that never yields a
// body_part entity on its own.
const GenericBodyPart = "body"

// KeywordEntry maps one matchable phrase (lowercased) to its canonical
// symptom, associated body part, and candidate condition identifiers.
type KeywordEntry struct {
	Phrase     string
	Symptom    string
	BodyPart   string
	Conditions []string
}

// LanguagePack holds the matchable vocabulary for one language.
// Keywords keep their declaration order so that scoring ties resolve
// deterministically by first occurrence.
type LanguagePack struct {
	Keywords      []KeywordEntry
	SeverityWords []string
	DurationWords []string

	// DurationPatterns holds one compiled pattern per duration word,
	// in the same order, matching "<number> <unit>" phrases.
	DurationPatterns []*regexp.Regexp
}

// Every language covers the same ten canonical symptoms; only the
// surface phrases differ. Declaration order is significant.
var canonicalSymptoms = []struct {
	symptom    string
	bodyPart   string
	conditions []string
}{
	{"headache", "head", []string{"migraine", "tension_headache", "sinusitis"}},
	{"fever", "body", []string{"flu", "infection", "covid19"}},
	{"cough", "chest", []string{"bronchitis", "flu", "covid19"}},
	{"sore throat", "throat", []string{"pharyngitis", "flu", "strep_throat"}},
	{"nausea", "stomach", []string{"gastroenteritis", "food_poisoning", "migraine"}},
	{"dizziness", "head", []string{"vertigo", "low_blood_pressure", "dehydration"}},
	{"chest pain", "chest", []string{"angina", "anxiety", "gastritis"}},
	{"back pain", "back", []string{"muscle_strain", "herniated_disc", "sciatica"}},
	{"fatigue", "body", []string{"anemia", "chronic_fatigue", "depression"}},
	{"shortness of breath", "chest", []string{"asthma", "anxiety", "heart_condition"}},
}

// newPack builds a language pack from per-language surface phrases,
// one per canonical symptom, in canonical order.
func newPack(phrases []string, severity, duration []string) LanguagePack {
	keywords := make([]KeywordEntry, len(canonicalSymptoms))
	for i, c := range canonicalSymptoms {
		keywords[i] = KeywordEntry{
			Phrase:     phrases[i],
			Symptom:    c.symptom,
			BodyPart:   c.bodyPart,
			Conditions: c.conditions,
		}
	}
	patterns := make([]*regexp.Regexp, len(duration))
	for i, unit := range duration {
		patterns[i] = regexp.MustCompile(`(?i)\d+\s*` + regexp.QuoteMeta(unit))
	}
	return LanguagePack{
		Keywords:         keywords,
		SeverityWords:    severity,
		DurationWords:    duration,
		DurationPatterns: patterns,
	}
}

var packs = map[string]LanguagePack{
	"en": newPack(
		[]string{"headache", "fever", "cough", "sore throat", "nausea", "dizziness", "chest pain", "back pain", "fatigue", "shortness of breath"},
		[]string{"severe", "mild", "moderate", "intense", "sharp", "dull", "persistent"},
		[]string{"days", "hours", "weeks", "months", "minutes"},
	),
	"es": newPack(
		[]string{"dolor de cabeza", "fiebre", "tos", "dolor de garganta", "náuseas", "mareos", "dolor en el pecho", "dolor de espalda", "fatiga", "falta de aire"},
		[]string{"severo", "leve", "moderado", "intenso", "agudo", "sordo", "persistente"},
		[]string{"días", "horas", "semanas", "meses", "minutos"},
	),
	"fr": newPack(
		[]string{"mal de tête", "fièvre", "toux", "mal de gorge", "nausées", "étourdissements", "douleur thoracique", "douleur au dos", "fatigue", "essoufflement"},
		[]string{"sévère", "léger", "modéré", "intense", "aigu", "sourd", "persistant"},
		[]string{"jours", "heures", "semaines", "mois", "minutes"},
	),
	"de": newPack(
		[]string{"kopfschmerzen", "fieber", "husten", "halsschmerzen", "übelkeit", "schwindel", "brustschmerzen", "rückenschmerzen", "müdigkeit", "atemnot"},
		[]string{"schwer", "leicht", "mäßig", "intensiv", "scharf", "dumpf", "anhaltend"},
		[]string{"tage", "stunden", "wochen", "monate", "minuten"},
	),
	"zh": newPack(
		[]string{"头痛", "发烧", "咳嗽", "喉咙痛", "恶心", "头晕", "胸痛", "背痛", "疲劳", "呼吸困难"},
		[]string{"严重", "轻微", "中度", "剧烈", "尖锐", "钝", "持续"},
		[]string{"天", "小时", "周", "月", "分钟"},
	),
	"ar": newPack(
		[]string{"صداع", "حمى", "سعال", "التهاب الحلق", "غثيان", "دوار", "ألم الصدر", "ألم الظهر", "تعب", "ضيق التنفس"},
		[]string{"شديد", "خفيف", "متوسط", "حاد", "ثاقب", "باهت", "مستمر"},
		[]string{"أيام", "ساعات", "أسابيع", "شهور", "دقائق"},
	),
	"ha": newPack(
		[]string{"ciwon kai", "zazzabi", "tari", "ciwon makogwaro", "tashin zuciya", "suma", "ciwon kirji", "ciwon baya", "gajiya", "ƙyuwar numfashi"},
		[]string{"mai tsanani", "mai sauƙi", "matsakaici", "mai ƙarfi", "mai kaifi", "mai laushi", "mai dawwama"},
		[]string{"kwanaki", "awanni", "makonni", "watanni", "mintuna"},
	),
	"yo": newPack(
		[]string{"irori ori", "iba", "ikọ", "ọfun ọfun", "ikorira", "irora ori", "irora ọkan", "irora ẹhin", "aarẹ", "ẹmi kukuru"},
		[]string{"nla", "kekere", "aarin", "lagbara", "didasilẹ", "rirọ", "titẹsiwaju"},
		[]string{"ọjọ", "wakati", "ọsẹ", "oṣu", "iṣẹju"},
	),
	"ig": newPack(
		[]string{"isi ọwụwa", "ahụ ọkụ", "ụkwara", "akpịrị mgbu", "ọgbụgbọ", "isi ọwụwa_dizziness", "mgbu obi", "mgbu azụ", "ike gwụrụ", "iku ume siri ike"},
		[]string{"siri ike", "dị nta", "ọkara", "dị ike", "dị nkọ", "dị nro", "na-adịgide"},
		[]string{"ụbọchị", "awa", "izu", "ọnwa", "nkeji"},
	),
	"pcm": newPack(
		[]string{"headache", "fever", "cough", "sore throat", "belle pain", "head dey turn", "chest pain", "back pain", "body weak", "no fit breathe"},
		[]string{"serious", "small", "so-so", "plenty", "sharp", "dull", "no dey stop"},
		[]string{"days", "hours", "weeks", "months", "minutes"},
	),
	"ff": newPack(
		[]string{"hoore yejjitee", "jummirde", "tuttungol", "yejji kunnde", "ɓeynugol", "hoore yejjitaare", "yejji heccere", "yejji layɗo", "jaaynde", "ɗaɓɓugol wareeji"},
		[]string{"sukaaɓe", "famɗi", "hakkunde", "mawndu", "ceertuɗo", "tolnol", "woppingo"},
		[]string{"ñalnguuji", "njamndi", "yontere", "lewru", "hojomaaji"},
	),
	"kr": newPack(
		[]string{"kashikro wuye", "kurowa", "toshi", "kelǝ wuye", "kǝra kursi", "kashikro tawar", "kashikro wuye_chest", "ngalaro wuye", "kursi naro", "numfashi kambe"},
		[]string{"fal", "kambe", "kǝlǝ", "ngadaro", "kashikro", "tolnol", "ngamnaro"},
		[]string{"kashiri", "kursi", "kashikri", "shǝtta", "minjiti"},
	),
	"ibb": newPack(
		[]string{"mkpọ ukọ", "ukut asịsọñọ", "ntufọk", "mkpọ ufọk", "nkpọ", "ukọ ndiwụt", "mkpọ obot", "mkpọ ayara", "ikọt ukut", "nkeme emi"},
		[]string{"nkpọ", "kamit", "kiet", "mkpa", "nkpọ", "tolnol", "emi ndiwọp"},
		[]string{"usọñ", "awa", "ikọt", "usen", "minjit"},
	),
	"tiv": newPack(
		[]string{"u ter ken", "ikumen", "u tuen", "u ter gwaghwa", "ikumen_nausea", "ikyume", "u ter gbaange", "u ter uveren", "kwaghyan sha", "mngerem kambe"},
		[]string{"sha", "nahan", "kwaghyan", "ken", "sha", "tolnol", "ga"},
		[]string{"ahar", "utar", "ikwahar", "mbaor", "ikyume"},
	),
	"ijc": newPack(
		[]string{"tẹin ụrụ", "ọwọrọ gbanị", "kọfị", "tẹin kpọn", "ẹkpụ", "ụrụ tẹin", "tẹin ọkaka", "tẹin bẹlẹ", "biri tẹin", "yemi kambe"},
		[]string{"bara", "bịrị", "kẹ", "pụọ", "bara", "tolnol", "tari"},
		[]string{"ụbọ", "awa", "ikọt", "ọnwa", "minjit"},
	),
	"bin": newPack(
		[]string{"ukpọn ukọ", "ọwọrọ", "uku", "ukpọn ẹhọn", "ẹkpụ", "ukpọn koko", "ukpọn okhuo", "ukpọn bẹlẹ", "egbe khian", "emi kambe"},
		[]string{"guẹguẹ", "kamit", "kpọlọ", "nkpọ", "bara", "tolnol", "ọ koko"},
		[]string{"ẹvbọ", "ọwọ", "ikọt", "usen", "minjit"},
	),
}

// Pack returns the language pack for the given language code, falling
// back to the default language when the code is unknown.
func Pack(language string) LanguagePack {
	if p, ok := packs[language]; ok {
		return p
	}
	return packs[DefaultLanguage]
}

// Supported reports whether a language has its own vocabulary pack.
func Supported(language string) bool {
	_, ok := packs[language]
	return ok
}

// Languages returns all supported language codes. Order is not
// guaranteed.
func Languages() []string {
	codes := make([]string, 0, len(packs))
	for code := range packs {
		codes = append(codes, code)
	}
	return codes
}
