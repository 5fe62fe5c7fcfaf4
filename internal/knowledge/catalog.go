package knowledge

// ConditionInfo is the human-readable display data for one condition
// in one language.
type ConditionInfo struct {
	Name            string
	Description     string
	Recommendations []string
}

// catalog maps condition identifier -> language code -> display data.
// Every condition carries an English entry; localized entries exist
// for the major languages. Lookups fall back to English.
var catalog = map[string]map[string]ConditionInfo{
	"migraine": {
		"en": {
			Name:        "Migraine",
			Description: "A neurological condition characterized by intense, debilitating headaches often accompanied by nausea and sensitivity to light.",
			Recommendations: []string{
				"Rest in a quiet, dark room",
				"Apply cold compress to forehead",
				"Stay hydrated",
				"Consider over-the-counter pain relievers",
				"Consult a neurologist if symptoms persist",
			},
		},
		"es": {
			Name:        "Migraña",
			Description: "Una condición neurológica caracterizada por dolores de cabeza intensos y debilitantes, a menudo acompañados de náuseas y sensibilidad a la luz.",
			Recommendations: []string{
				"Descansar en una habitación tranquila y oscura",
				"Aplicar compresa fría en la frente",
				"Mantenerse hidratado",
				"Considerar analgésicos de venta libre",
				"Consultar a un neurólogo si los síntomas persisten",
			},
		},
		"fr": {
			Name:        "Migraine",
			Description: "Une condition neurologique caractérisée par des maux de tête intenses et débilitants, souvent accompagnés de nausées et de sensibilité à la lumière.",
			Recommendations: []string{
				"Se reposer dans une pièce calme et sombre",
				"Appliquer une compresse froide sur le front",
				"Rester hydraté",
				"Envisager des analgésiques en vente libre",
				"Consulter un neurologue si les symptômes persistent",
			},
		},
		"de": {
			Name:        "Migräne",
			Description: "Eine neurologische Erkrankung, die durch intensive, schwächende Kopfschmerzen gekennzeichnet ist, oft begleitet von Übelkeit und Lichtempfindlichkeit.",
			Recommendations: []string{
				"In einem ruhigen, dunklen Raum ausruhen",
				"Kalte Kompresse auf die Stirn legen",
				"Ausreichend Flüssigkeit zu sich nehmen",
				"Rezeptfreie Schmerzmittel in Betracht ziehen",
				"Neurologen konsultieren, wenn Symptome anhalten",
			},
		},
		"zh": {
			Name:        "偏头痛",
			Description: "一种神经系统疾病，特征是剧烈、使人虚弱的头痛，常伴有恶心和对光敏感。",
			Recommendations: []string{
				"在安静、黑暗的房间休息",
				"在额头敷冷敷",
				"保持水分",
				"考虑使用非处方止痛药",
				"如果症状持续，请咨询神经科医生",
			},
		},
	},
	"flu": {
		"en": {
			Name:        "Influenza (Flu)",
			Description: "A contagious respiratory illness caused by influenza viruses, characterized by fever, cough, sore throat, and body aches.",
			Recommendations: []string{
				"Get plenty of rest",
				"Drink lots of fluids",
				"Take fever-reducing medications",
				"Avoid contact with others",
				"Seek medical attention if symptoms worsen",
			},
		},
		"es": {
			Name:        "Gripe",
			Description: "Una enfermedad respiratoria contagiosa causada por virus de la gripe, caracterizada por fiebre, tos, dolor de garganta y dolores corporales.",
			Recommendations: []string{
				"Descansar mucho",
				"Beber muchos líquidos",
				"Tomar medicamentos para reducir la fiebre",
				"Evitar el contacto con otras personas",
				"Buscar atención médica si los síntomas empeoran",
			},
		},
		"fr": {
			Name:        "Grippe",
			Description: "Une maladie respiratoire contagieuse causée par des virus grippaux, caractérisée par de la fièvre, de la toux, un mal de gorge et des courbatures.",
			Recommendations: []string{
				"Beaucoup de repos",
				"Boire beaucoup de liquides",
				"Prendre des médicaments pour réduire la fièvre",
				"Éviter le contact avec les autres",
				"Consulter un médecin si les symptômes s'aggravent",
			},
		},
		"de": {
			Name:        "Grippe",
			Description: "Eine ansteckende Atemwegserkrankung, die durch Influenzaviren verursacht wird und durch Fieber, Husten, Halsschmerzen und Gliederschmerzen gekennzeichnet ist.",
			Recommendations: []string{
				"Viel Ruhe",
				"Viel trinken",
				"Fiebersenkende Medikamente einnehmen",
				"Kontakt mit anderen vermeiden",
				"Arzt aufsuchen, wenn sich die Symptome verschlimmern",
			},
		},
		"zh": {
			Name:        "流感",
			Description: "由流感病毒引起的传染性呼吸道疾病，特征是发烧、咳嗽、喉咙痛和身体疼痛。",
			Recommendations: []string{
				"充分休息",
				"多喝水",
				"服用退烧药",
				"避免与他人接触",
				"如果症状恶化，请就医",
			},
		},
	},
	"gastroenteritis": {
		"en": {
			Name:        "Gastroenteritis",
			Description: "Inflammation of the digestive tract causing nausea, vomiting, diarrhea, and abdominal pain.",
			Recommendations: []string{
				"Stay hydrated with clear fluids",
				"Eat bland foods (BRAT diet)",
				"Avoid dairy and fatty foods",
				"Rest adequately",
				"Seek medical help if dehydration occurs",
			},
		},
		"es": {
			Name:        "Gastroenteritis",
			Description: "Inflamación del tracto digestivo que causa náuseas, vómitos, diarrea y dolor abdominal.",
			Recommendations: []string{
				"Mantenerse hidratado con líquidos claros",
				"Comer alimentos suaves (dieta BRAT)",
				"Evitar lácteos y alimentos grasos",
				"Descansar adecuadamente",
				"Buscar ayuda médica si ocurre deshidratación",
			},
		},
		"fr": {
			Name:        "Gastro-entérite",
			Description: "Inflammation du tractus digestif provoquant des nausées, des vomissements, de la diarrhée et des douleurs abdominales.",
			Recommendations: []string{
				"Rester hydraté avec des liquides clairs",
				"Manger des aliments fades (régime BRAT)",
				"Éviter les produits laitiers et les aliments gras",
				"Se reposer correctement",
				"Consulter un médecin en cas de déshydratation",
			},
		},
		"de": {
			Name:        "Gastroenteritis",
			Description: "Entzündung des Verdauungstrakts, die Übelkeit, Erbrechen, Durchfall und Bauchschmerzen verursacht.",
			Recommendations: []string{
				"Mit klaren Flüssigkeiten hydratisiert bleiben",
				"Milde Lebensmittel essen (BRAT-Diät)",
				"Milchprodukte und fetthaltige Lebensmittel vermeiden",
				"Ausreichend Ruhe",
				"Medizinische Hilfe bei Dehydrierung suchen",
			},
		},
		"zh": {
			Name:        "胃肠炎",
			Description: "消化道炎症，引起恶心、呕吐、腹泻和腹痛。",
			Recommendations: []string{
				"用清澈的液体保持水分",
				"吃清淡的食物（BRAT饮食）",
				"避免乳制品和油腻食物",
				"充分休息",
				"如发生脱水，请就医",
			},
		},
	},
	"vertigo": {
		"en": {
			Name:        "Vertigo",
			Description: "A sensation of spinning or dizziness, often caused by inner ear problems or vestibular issues.",
			Recommendations: []string{
				"Sit or lie down immediately",
				"Avoid sudden head movements",
				"Stay hydrated",
				"Perform balance exercises",
				"Consult an ENT specialist",
			},
		},
		"es": {
			Name:        "Vértigo",
			Description: "Una sensación de giro o mareo, a menudo causada por problemas del oído interno o problemas vestibulares.",
			Recommendations: []string{
				"Sentarse o acostarse inmediatamente",
				"Evitar movimientos bruscos de la cabeza",
				"Mantenerse hidratado",
				"Realizar ejercicios de equilibrio",
				"Consultar a un especialista en otorrinolaringología",
			},
		},
		"fr": {
			Name:        "Vertige",
			Description: "Une sensation de rotation ou d'étourdissement, souvent causée par des problèmes de l'oreille interne ou des problèmes vestibulaires.",
			Recommendations: []string{
				"S'asseoir ou s'allonger immédiatement",
				"Éviter les mouvements brusques de la tête",
				"Rester hydraté",
				"Effectuer des exercices d'équilibre",
				"Consulter un spécialiste ORL",
			},
		},
		"de": {
			Name:        "Schwindel",
			Description: "Ein Gefühl von Drehen oder Benommenheit, oft verursacht durch Innenohrprobleme oder vestibuläre Probleme.",
			Recommendations: []string{
				"Sofort hinsetzen oder hinlegen",
				"Plötzliche Kopfbewegungen vermeiden",
				"Ausreichend Flüssigkeit zu sich nehmen",
				"Gleichgewichtsübungen durchführen",
				"HNO-Facharzt konsultieren",
			},
		},
		"zh": {
			Name:        "眩晕",
			Description: "一种旋转或头晕的感觉，通常由内耳问题或前庭问题引起。",
			Recommendations: []string{
				"立即坐下或躺下",
				"避免突然的头部运动",
				"保持水分",
				"进行平衡练习",
				"咨询耳鼻喉专科医生",
			},
		},
	},
	"muscle_strain": {
		"en": {
			Name:        "Muscle Strain",
			Description: "Injury to a muscle or tendon, often caused by overexertion or improper movement.",
			Recommendations: []string{
				"Rest the affected area",
				"Apply ice for first 48 hours",
				"Use compression bandage",
				"Elevate the area if possible",
				"Gentle stretching after initial healing",
			},
		},
		"es": {
			Name:        "Tensión Muscular",
			Description: "Lesión en un músculo o tendón, a menudo causada por esfuerzo excesivo o movimiento inadecuado.",
			Recommendations: []string{
				"Descansar el área afectada",
				"Aplicar hielo durante las primeras 48 horas",
				"Usar vendaje de compresión",
				"Elevar el área si es posible",
				"Estiramiento suave después de la curación inicial",
			},
		},
		"fr": {
			Name:        "Tension Musculaire",
			Description: "Blessure d'un muscle ou d'un tendon, souvent causée par un effort excessif ou un mouvement inapproprié.",
			Recommendations: []string{
				"Reposer la zone affectée",
				"Appliquer de la glace pendant les 48 premières heures",
				"Utiliser un bandage de compression",
				"Surélever la zone si possible",
				"Étirement doux après la guérison initiale",
			},
		},
		"de": {
			Name:        "Muskelzerrung",
			Description: "Verletzung eines Muskels oder einer Sehne, oft verursacht durch Überanstrengung oder falsche Bewegung.",
			Recommendations: []string{
				"Betroffene Stelle schonen",
				"In den ersten 48 Stunden Eis auftragen",
				"Kompressionsbandage verwenden",
				"Bereich wenn möglich hochlagern",
				"Sanftes Dehnen nach der ersten Heilung",
			},
		},
		"zh": {
			Name:        "肌肉拉伤",
			Description: "肌肉或肌腱的损伤，通常由过度用力或不当运动引起。",
			Recommendations: []string{
				"让受影响的部位休息",
				"在前48小时内冰敷",
				"使用压缩绷带",
				"如果可能，抬高该部位",
				"初步愈合后进行轻柔拉伸",
			},
		},
	},
	"tension_headache": {
		"en": {
			Name:        "Tension Headache",
			Description: "A common headache with mild to moderate pressing pain, often linked to stress or muscle tension.",
			Recommendations: []string{
				"Take short breaks from screens",
				"Apply a warm compress to neck and shoulders",
				"Manage stress with relaxation techniques",
				"Consult a clinician if headaches become frequent",
			},
		},
	},
	"sinusitis": {
		"en": {
			Name:        "Sinusitis",
			Description: "Inflammation of the sinuses that can cause facial pressure, congestion, and headache.",
			Recommendations: []string{
				"Use steam inhalation or saline rinses",
				"Stay hydrated",
				"Rest and avoid irritants like smoke",
				"See a clinician if symptoms last beyond ten days",
			},
		},
	},
	"infection": {
		"en": {
			Name:        "General Infection",
			Description: "A bacterial or viral infection that commonly presents with fever and general discomfort.",
			Recommendations: []string{
				"Rest and hydrate",
				"Monitor body temperature",
				"Seek care if fever is high or persistent",
			},
		},
	},
	"covid19": {
		"en": {
			Name:        "COVID-19",
			Description: "A viral respiratory illness that can cause fever, cough, fatigue, and loss of taste or smell.",
			Recommendations: []string{
				"Isolate from others",
				"Take a COVID-19 test",
				"Rest and hydrate",
				"Seek urgent care if breathing becomes difficult",
			},
		},
	},
	"bronchitis": {
		"en": {
			Name:        "Bronchitis",
			Description: "Inflammation in the airways that can cause persistent cough.",
			Recommendations: []string{
				"Drink warm fluids",
				"Avoid smoke exposure",
				"See a clinician if cough persists",
			},
		},
	},
	"pharyngitis": {
		"en": {
			Name:        "Pharyngitis",
			Description: "Irritation or inflammation of the throat, often with pain when swallowing.",
			Recommendations: []string{
				"Warm fluids and rest",
				"Use soothing lozenges",
				"Consult care if fever is high",
			},
		},
	},
	"strep_throat": {
		"en": {
			Name:        "Strep Throat",
			Description: "A bacterial throat infection causing sudden sore throat, pain when swallowing, and fever.",
			Recommendations: []string{
				"See a clinician for a strep test",
				"Rest and drink warm fluids",
				"Complete any prescribed antibiotic course",
			},
		},
	},
	"food_poisoning": {
		"en": {
			Name:        "Food Poisoning",
			Description: "Illness from contaminated food causing nausea, vomiting, and stomach cramps.",
			Recommendations: []string{
				"Use oral rehydration fluids",
				"Eat bland foods once vomiting settles",
				"Seek care if symptoms are severe or prolonged",
			},
		},
	},
	"low_blood_pressure": {
		"en": {
			Name:        "Low Blood Pressure",
			Description: "Blood pressure below the normal range, which can cause dizziness and fainting.",
			Recommendations: []string{
				"Stand up slowly from sitting or lying",
				"Drink more fluids",
				"Consult a clinician if episodes recur",
			},
		},
	},
	"dehydration": {
		"en": {
			Name:        "Dehydration",
			Description: "Insufficient body fluids, often causing dizziness, dry mouth, and fatigue.",
			Recommendations: []string{
				"Drink water or oral rehydration solution",
				"Avoid caffeine and alcohol",
				"Seek care if unable to keep fluids down",
			},
		},
	},
	"angina": {
		"en": {
			Name:        "Angina",
			Description: "Chest pain caused by reduced blood flow to the heart; requires careful medical assessment.",
			Recommendations: []string{
				"Stop activity immediately",
				"Seek urgent medical assessment",
				"Use emergency care for severe pain",
			},
		},
	},
	"anxiety": {
		"en": {
			Name:        "Anxiety",
			Description: "A stress response that can cause chest tightness, rapid breathing, and restlessness.",
			Recommendations: []string{
				"Practice slow, deep breathing",
				"Reduce caffeine intake",
				"Consider speaking with a mental health professional",
			},
		},
	},
	"gastritis": {
		"en": {
			Name:        "Gastritis",
			Description: "Inflammation of the stomach lining that can cause burning pain and discomfort.",
			Recommendations: []string{
				"Avoid spicy and acidic foods",
				"Eat smaller, more frequent meals",
				"Consult a clinician if pain persists",
			},
		},
	},
	"herniated_disc": {
		"en": {
			Name:        "Herniated Disc",
			Description: "A spinal disc injury that can press on nearby nerves and cause back pain.",
			Recommendations: []string{
				"Avoid heavy lifting",
				"Apply cold or warm compresses",
				"Seek care if numbness or weakness appears",
			},
		},
	},
	"sciatica": {
		"en": {
			Name:        "Sciatica",
			Description: "Pain radiating along the sciatic nerve from the lower back down the leg.",
			Recommendations: []string{
				"Keep gently active rather than bed-bound",
				"Use cold or warm compresses",
				"Consult a clinician if pain radiates below the knee",
			},
		},
	},
	"anemia": {
		"en": {
			Name:        "Anemia",
			Description: "A shortage of healthy red blood cells, commonly causing fatigue and weakness.",
			Recommendations: []string{
				"Eat iron-rich foods",
				"Ask a clinician about blood testing",
				"Track energy levels over time",
			},
		},
	},
	"chronic_fatigue": {
		"en": {
			Name:        "Chronic Fatigue",
			Description: "Persistent tiredness that does not improve with rest and lasts for an extended period.",
			Recommendations: []string{
				"Improve sleep and hydration",
				"Track duration and severity",
				"Consult a clinician if persistent",
			},
		},
	},
	"depression": {
		"en": {
			Name:        "Depression",
			Description: "A mood condition that can present with persistent fatigue, low energy, and loss of interest.",
			Recommendations: []string{
				"Keep a regular sleep schedule",
				"Stay connected with supportive people",
				"Speak with a mental health professional",
			},
		},
	},
	"asthma": {
		"en": {
			Name:        "Asthma",
			Description: "A chronic airway condition causing wheezing, chest tightness, and shortness of breath.",
			Recommendations: []string{
				"Avoid known triggers",
				"Use prescribed inhalers as directed",
				"Seek urgent care for severe breathing difficulty",
			},
		},
	},
	"heart_condition": {
		"en": {
			Name:        "Heart Condition",
			Description: "Difficulty breathing can indicate an underlying heart problem that needs medical evaluation.",
			Recommendations: []string{
				"Stop exertion and sit upright",
				"Use urgent care for moderate or severe symptoms",
				"Call emergency services if severe",
			},
		},
	},
}

// Condition resolves display data for a condition identifier in the
// requested language, falling back to English. The second return is
// false when the identifier is entirely unknown.
func Condition(id, language string) (ConditionInfo, bool) {
	langs, ok := catalog[id]
	if !ok {
		return ConditionInfo{}, false
	}
	if info, ok := langs[language]; ok {
		return info, true
	}
	return langs[DefaultLanguage], true
}
