package intake

// CompleteTexts es el pool de mensajes que se muestra cuando un
// medicamento queda completo por hoy (texto de la app original, en finés).
// Cosmético, no crítico; la selección es determinística por id.
var CompleteTexts = []string{
	"Mahtavaa, otit lääkkeesi ajallaan, hyvin tehty! ✅",
	"Hienoa työtä, kehosi kiittää tästä annoksesta. 💊",
	"Hyvä sinä, yksi tärkeä juttu hoidettu tälle päivälle. 🌟",
	"Loistavaa omasta hyvinvoinnista huolehtimista. 💚",
	"Jes, lääkkeet otettu, askel kohti parempaa vointia. 🎉",
	"Upea juttu, että pidät lääkekuurista kiinni. 🙌",
	"Hyvin tehty, tällaiset pienet teot ovat isoja tulevaisuuden kannalta. 🧩",
	"Kiitos, kun huolehdit itsestäsi näin hyvin. 🤍",
	"Tämä on juuri sitä arjen sankaruutta, lääkkeet otettu. 🏅",
	"Vakaata ja vastuullista toimintaa, lääkitys on nyt kunnossa. 🛡️",
	"Huippua, että pidät kiinni rutiineistasi. 🔁",
	"Tämä hetki oli tärkeä, ja hoidit sen hienosti. ✅",
	"Pieni teko, mutta iso vaikutus, hyvin hoidettu. 🌱",
	"Sinä teit sen taas, lääkkeet otettu ajallaan. ⏰",
	"Keho ja mieli kiittävät tästä valinnasta. 🧠",
	"Jokainen kerta kun otat lääkkeet, autat itseäsi, hieno juttu. 🤗",
	"Näin se oma hyvinvointi rakennetaan, pala kerrallaan. 🧱",
	"Erinomaista tarkkuutta, tämän päivän annos on otettu. 📅",
	"Olet huolellinen ja johdonmukainen, se näkyy tässäkin. 👍",
	"Tärkeä askel tälle päivälle suoritettu, lääkkeet otettu, hyvin tehty. 🌟",
}
