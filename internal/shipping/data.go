package shipping

// WilayaData is the static reference record for one Algerian wilaya:
// administrative code, bilingual names, the default shipping price in DZD
// and the main baladiyas (communes) used for delivery addressing.
type WilayaData struct {
	Code         int
	NameAr       string
	NameEn       string
	DefaultPrice int64
	Baladiyas    []Baladiya
}

// AlgerianWilayas lists all 58 wilayas. Admins can adjust prices and
// deactivate destinations; this table only seeds the database and resolves
// baladiya names.
var AlgerianWilayas = []WilayaData{
	{1, "أدرار", "Adrar", 900, []Baladiya{{"أدرار", "Adrar"}, {"رقان", "Reggane"}, {"أولف", "Aoulef"}, {"تسابيت", "Tsabit"}}},
	{2, "الشلف", "Chlef", 500, []Baladiya{{"الشلف", "Chlef"}, {"تنس", "Tenes"}, {"بوقادير", "Boukadir"}, {"واد الفضة", "Oued Fodda"}}},
	{3, "الأغواط", "Laghouat", 700, []Baladiya{{"الأغواط", "Laghouat"}, {"آفلو", "Aflou"}, {"حاسي الرمل", "Hassi R'Mel"}}},
	{4, "أم البواقي", "Oum El Bouaghi", 600, []Baladiya{{"أم البواقي", "Oum El Bouaghi"}, {"عين البيضاء", "Ain Beida"}, {"عين مليلة", "Ain M'lila"}}},
	{5, "باتنة", "Batna", 600, []Baladiya{{"باتنة", "Batna"}, {"بريكة", "Barika"}, {"عين التوتة", "Ain Touta"}, {"أريس", "Arris"}}},
	{6, "بجاية", "Bejaia", 550, []Baladiya{{"بجاية", "Bejaia"}, {"أقبو", "Akbou"}, {"سيدي عيش", "Sidi Aich"}, {"تيشي", "Tichy"}}},
	{7, "بسكرة", "Biskra", 650, []Baladiya{{"بسكرة", "Biskra"}, {"طولقة", "Tolga"}, {"سيدي عقبة", "Sidi Okba"}}},
	{8, "بشار", "Bechar", 850, []Baladiya{{"بشار", "Bechar"}, {"القنادسة", "Kenadsa"}, {"عبادلة", "Abadla"}, {"تاغيت", "Taghit"}}},
	{9, "البليدة", "Blida", 400, []Baladiya{{"البليدة", "Blida"}, {"بوفاريك", "Boufarik"}, {"الأربعاء", "Larbaa"}, {"موزاية", "Mouzaia"}}},
	{10, "البويرة", "Bouira", 500, []Baladiya{{"البويرة", "Bouira"}, {"الأخضرية", "Lakhdaria"}, {"سور الغزلان", "Sour El Ghozlane"}}},
	{11, "تمنراست", "Tamanrasset", 1200, []Baladiya{{"تمنراست", "Tamanrasset"}, {"إدلس", "Ideles"}}},
	{12, "تبسة", "Tebessa", 650, []Baladiya{{"تبسة", "Tebessa"}, {"بئر العاتر", "Bir El Ater"}, {"الشريعة", "Cheria"}}},
	{13, "تلمسان", "Tlemcen", 550, []Baladiya{{"تلمسان", "Tlemcen"}, {"مغنية", "Maghnia"}, {"الغزوات", "Ghazaouet"}, {"الرمشي", "Remchi"}}},
	{14, "تيارت", "Tiaret", 600, []Baladiya{{"تيارت", "Tiaret"}, {"فرندة", "Frenda"}, {"سوقر", "Sougueur"}}},
	{15, "تيزي وزو", "Tizi Ouzou", 500, []Baladiya{{"تيزي وزو", "Tizi Ouzou"}, {"عزازقة", "Azazga"}, {"ذراع الميزان", "Draa El Mizan"}, {"تيقزيرت", "Tigzirt"}}},
	{16, "الجزائر", "Algiers", 400, []Baladiya{{"الجزائر الوسطى", "Alger Centre"}, {"باب الوادي", "Bab El Oued"}, {"باب الزوار", "Bab Ezzouar"}, {"الحراش", "El Harrach"}, {"شراقة", "Cheraga"}}},
	{17, "الجلفة", "Djelfa", 600, []Baladiya{{"الجلفة", "Djelfa"}, {"مسعد", "Messaad"}, {"عين وسارة", "Ain Oussera"}}},
	{18, "جيجل", "Jijel", 550, []Baladiya{{"جيجل", "Jijel"}, {"الطاهير", "Taher"}, {"الميلية", "El Milia"}}},
	{19, "سطيف", "Setif", 550, []Baladiya{{"سطيف", "Setif"}, {"العلمة", "El Eulma"}, {"عين ولمان", "Ain Oulmene"}, {"بوقاعة", "Bougaa"}}},
	{20, "سعيدة", "Saida", 600, []Baladiya{{"سعيدة", "Saida"}, {"البيض سيدي الشيخ", "El Hassasna"}, {"عين الحجر", "Ain El Hadjar"}}},
	{21, "سكيكدة", "Skikda", 550, []Baladiya{{"سكيكدة", "Skikda"}, {"القل", "Collo"}, {"عزابة", "Azzaba"}, {"الحروش", "El Harrouch"}}},
	{22, "سيدي بلعباس", "Sidi Bel Abbes", 600, []Baladiya{{"سيدي بلعباس", "Sidi Bel Abbes"}, {"تلاغ", "Telagh"}, {"سفيزف", "Sfisef"}}},
	{23, "عنابة", "Annaba", 600, []Baladiya{{"عنابة", "Annaba"}, {"البوني", "El Bouni"}, {"برحال", "Berrahal"}, {"سرايدي", "Seraidi"}}},
	{24, "قالمة", "Guelma", 600, []Baladiya{{"قالمة", "Guelma"}, {"وادي الزناتي", "Oued Zenati"}, {"بوشقوف", "Bouchegouf"}}},
	{25, "قسنطينة", "Constantine", 550, []Baladiya{{"قسنطينة", "Constantine"}, {"الخروب", "El Khroub"}, {"حامة بوزيان", "Hamma Bouziane"}, {"زيغود يوسف", "Zighoud Youcef"}}},
	{26, "المدية", "Medea", 500, []Baladiya{{"المدية", "Medea"}, {"البرواقية", "Berrouaghia"}, {"قصر البخاري", "Ksar El Boukhari"}}},
	{27, "مستغانم", "Mostaganem", 550, []Baladiya{{"مستغانم", "Mostaganem"}, {"عين تادلس", "Ain Tedles"}, {"سيدي علي", "Sidi Ali"}}},
	{28, "المسيلة", "M'Sila", 600, []Baladiya{{"المسيلة", "M'Sila"}, {"بوسعادة", "Bou Saada"}, {"سيدي عيسى", "Sidi Aissa"}}},
	{29, "معسكر", "Mascara", 600, []Baladiya{{"معسكر", "Mascara"}, {"سيق", "Sig"}, {"المحمدية", "Mohammadia"}, {"تيغنيف", "Tighennif"}}},
	{30, "ورقلة", "Ouargla", 800, []Baladiya{{"ورقلة", "Ouargla"}, {"حاسي مسعود", "Hassi Messaoud"}, {"الرويسات", "Rouissat"}}},
	{31, "وهران", "Oran", 550, []Baladiya{{"وهران", "Oran"}, {"السانية", "Es Senia"}, {"أرزيو", "Arzew"}, {"بئر الجير", "Bir El Djir"}, {"عين الترك", "Ain El Turk"}}},
	{32, "البيض", "El Bayadh", 750, []Baladiya{{"البيض", "El Bayadh"}, {"الأبيض سيدي الشيخ", "El Abiodh Sidi Cheikh"}, {"بوقطب", "Bougtoub"}}},
	{33, "إليزي", "Illizi", 1200, []Baladiya{{"إليزي", "Illizi"}, {"إن أميناس", "In Amenas"}}},
	{34, "برج بوعريريج", "Bordj Bou Arreridj", 550, []Baladiya{{"برج بوعريريج", "Bordj Bou Arreridj"}, {"رأس الوادي", "Ras El Oued"}, {"المنصورة", "Mansoura"}}},
	{35, "بومرداس", "Boumerdes", 450, []Baladiya{{"بومرداس", "Boumerdes"}, {"برج منايل", "Bordj Menaiel"}, {"دلس", "Dellys"}, {"بودواو", "Boudouaou"}}},
	{36, "الطارف", "El Tarf", 650, []Baladiya{{"الطارف", "El Tarf"}, {"القالة", "El Kala"}, {"بن مهيدي", "Ben M'Hidi"}}},
	{37, "تندوف", "Tindouf", 1100, []Baladiya{{"تندوف", "Tindouf"}, {"أم العسل", "Oum El Assel"}}},
	{38, "تيسمسيلت", "Tissemsilt", 600, []Baladiya{{"تيسمسيلت", "Tissemsilt"}, {"ثنية الاحد", "Theniet El Had"}, {"برج بونعامة", "Bordj Bounaama"}}},
	{39, "الوادي", "El Oued", 750, []Baladiya{{"الوادي", "El Oued"}, {"قمار", "Guemar"}, {"الدبيلة", "Debila"}, {"الرباح", "Robbah"}}},
	{40, "خنشلة", "Khenchela", 650, []Baladiya{{"خنشلة", "Khenchela"}, {"قايس", "Kais"}, {"ششار", "Chechar"}}},
	{41, "سوق أهراس", "Souk Ahras", 650, []Baladiya{{"سوق أهراس", "Souk Ahras"}, {"سدراتة", "Sedrata"}, {"المشروحة", "Mechroha"}}},
	{42, "تيبازة", "Tipaza", 450, []Baladiya{{"تيبازة", "Tipaza"}, {"القليعة", "Kolea"}, {"حجوط", "Hadjout"}, {"شرشال", "Cherchell"}}},
	{43, "ميلة", "Mila", 550, []Baladiya{{"ميلة", "Mila"}, {"شلغوم العيد", "Chelghoum Laid"}, {"فرجيوة", "Ferdjioua"}}},
	{44, "عين الدفلى", "Ain Defla", 500, []Baladiya{{"عين الدفلى", "Ain Defla"}, {"خميس مليانة", "Khemis Miliana"}, {"مليانة", "Miliana"}}},
	{45, "النعامة", "Naama", 750, []Baladiya{{"النعامة", "Naama"}, {"المشرية", "Mecheria"}, {"عين الصفراء", "Ain Sefra"}}},
	{46, "عين تموشنت", "Ain Temouchent", 600, []Baladiya{{"عين تموشنت", "Ain Temouchent"}, {"حمام بوحجر", "Hammam Bou Hadjar"}, {"بني صاف", "Beni Saf"}}},
	{47, "غرداية", "Ghardaia", 750, []Baladiya{{"غرداية", "Ghardaia"}, {"متليلي", "Metlili"}, {"بريان", "Berriane"}}},
	{48, "غليزان", "Relizane", 550, []Baladiya{{"غليزان", "Relizane"}, {"وادي ارهيو", "Oued Rhiou"}, {"مازونة", "Mazouna"}}},
	{49, "تيميمون", "Timimoun", 950, []Baladiya{{"تيميمون", "Timimoun"}, {"أوقروت", "Aougrout"}, {"شروين", "Charouine"}}},
	{50, "برج باجي مختار", "Bordj Badji Mokhtar", 1300, []Baladiya{{"برج باجي مختار", "Bordj Badji Mokhtar"}, {"تيمياوين", "Timiaouine"}}},
	{51, "أولاد جلال", "Ouled Djellal", 700, []Baladiya{{"أولاد جلال", "Ouled Djellal"}, {"سيدي خالد", "Sidi Khaled"}, {"الدوسن", "Doucen"}}},
	{52, "بني عباس", "Beni Abbes", 950, []Baladiya{{"بني عباس", "Beni Abbes"}, {"إقلي", "Igli"}, {"كرزاز", "Kerzaz"}}},
	{53, "عين صالح", "In Salah", 1100, []Baladiya{{"عين صالح", "In Salah"}, {"فقارة الزوى", "Foggaret Ezzaouia"}}},
	{54, "عين قزام", "In Guezzam", 1300, []Baladiya{{"عين قزام", "In Guezzam"}, {"تين زواتين", "Tin Zaouatine"}}},
	{55, "تقرت", "Touggourt", 800, []Baladiya{{"تقرت", "Touggourt"}, {"تماسين", "Temacine"}, {"المقارين", "Megarine"}}},
	{56, "جانت", "Djanet", 1200, []Baladiya{{"جانت", "Djanet"}, {"برج الحواس", "Bordj El Haouas"}}},
	{57, "المغير", "El M'Ghair", 750, []Baladiya{{"المغير", "El M'Ghair"}, {"جامعة", "Djamaa"}, {"سيدي عمران", "Sidi Amrane"}}},
	{58, "المنيعة", "El Meniaa", 850, []Baladiya{{"المنيعة", "El Meniaa"}, {"حاسي القارة", "Hassi Gara"}}},
}

// BaladiyasForCode resolves the static sub-region list for a wilaya code.
func BaladiyasForCode(code int) []Baladiya {
	for _, w := range AlgerianWilayas {
		if w.Code == code {
			return w.Baladiyas
		}
	}
	return nil
}
