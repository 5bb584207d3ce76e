package tables

import "github.com/randomtoy/natal-go/internal/domain"

// Tables are arrays indexed by enum value; the length check in
// composer_test.go keeps them complete.

var sunTexts = [...]string{
	domain.Aries:       "Your core identity is bold, courageous, and pioneering. You're a natural leader who thrives on challenge.",
	domain.Taurus:      "Your essence is stable, patient, and determined. You value security and have a strong connection to the physical world.",
	domain.Gemini:      "Your core self is curious, adaptable, and communicative. You thrive on variety and intellectual stimulation.",
	domain.Cancer:      "Your identity is nurturing, intuitive, and emotionally deep. Family and home are central to who you are.",
	domain.Leo:         "Your essence is creative, dramatic, and warm-hearted. You shine when expressing yourself and being appreciated.",
	domain.Virgo:       "Your core self is analytical, practical, and service-oriented. You find meaning in helping others and perfecting skills.",
	domain.Libra:       "Your identity is diplomatic, harmonious, and relationship-focused. You seek balance and beauty in all things.",
	domain.Scorpio:     "Your essence is intense, passionate, and transformative. You dive deep and aren't afraid of life's mysteries.",
	domain.Sagittarius: "Your core self is adventurous, optimistic, and philosophical. You seek truth and meaning through exploration.",
	domain.Capricorn:   "Your identity is ambitious, disciplined, and responsible. You're built for achievement and long-term success.",
	domain.Aquarius:    "Your essence is innovative, independent, and humanitarian. You see the world differently and value freedom.",
	domain.Pisces:      "Your core self is compassionate, artistic, and spiritually connected. You're deeply empathetic and intuitive.",
}

var moonTexts = [...]string{
	domain.Aries:       "Your emotional nature is impulsive and direct. You react quickly and passionately to situations.",
	domain.Taurus:      "You need emotional stability and physical comfort. Your feelings are steady and loyal.",
	domain.Gemini:      "Your emotions are expressed through communication. You process feelings by talking about them.",
	domain.Cancer:      "You're deeply emotional and nurturing. Your feelings ebb and flow like the tides.",
	domain.Leo:         "You need emotional recognition and appreciation. Your feelings are warm and dramatic.",
	domain.Virgo:       "You analyze your emotions and seek to improve them. You express care through practical help.",
	domain.Libra:       "You seek emotional harmony and partnership. Your feelings are influenced by relationships.",
	domain.Scorpio:     "Your emotions run deep and intense. You feel everything powerfully and transform through feelings.",
	domain.Sagittarius: "You need emotional freedom and adventure. Your feelings are optimistic and expansive.",
	domain.Capricorn:   "You're emotionally reserved and responsible. You express feelings through actions.",
	domain.Aquarius:    "Your emotions are detached and intellectual. You value emotional independence.",
	domain.Pisces:      "You're emotionally sensitive and empathetic. Your feelings blend with others easily.",
}

// bodyThemes completes "<Body> in <Sign> colours ..." for bodies without a
// dedicated per-sign table.
var bodyThemes = [...]string{
	domain.Sun:     "your core identity",
	domain.Moon:    "your emotional needs",
	domain.Mercury: "how you think and communicate",
	domain.Venus:   "how you love and what you value",
	domain.Mars:    "how you act and assert yourself",
	domain.Jupiter: "where you grow and find opportunity",
	domain.Saturn:  "where you meet discipline and responsibility",
	domain.Uranus:  "where you seek change and independence",
	domain.Neptune: "your dreams and ideals",
	domain.Pluto:   "where you undergo deep transformation",
}

var signQualities = [...]string{
	domain.Aries:       "bold and direct",
	domain.Taurus:      "steady and sensual",
	domain.Gemini:      "curious and versatile",
	domain.Cancer:      "protective and sensitive",
	domain.Leo:         "expressive and generous",
	domain.Virgo:       "precise and helpful",
	domain.Libra:       "balanced and gracious",
	domain.Scorpio:     "intense and probing",
	domain.Sagittarius: "expansive and candid",
	domain.Capricorn:   "patient and ambitious",
	domain.Aquarius:    "original and detached",
	domain.Pisces:      "receptive and imaginative",
}

// houseTexts is indexed by house number; slot 0 is unused.
var houseTexts = [...]string{
	1:  "House of Self - Your personality, appearance, and approach to life. How you present yourself to the world.",
	2:  "House of Value - Your possessions, self-worth, and material resources. What you value and how you find security.",
	3:  "House of Communication - Your mind, siblings, and local community. How you learn and share information.",
	4:  "House of Home - Your roots, family, and emotional foundations. Your inner world and private life.",
	5:  "House of Pleasure - Your creativity, romance, and self-expression. What brings you joy and how you play.",
	6:  "House of Health - Your daily routines, work, and well-being. How you serve others and maintain wellness.",
	7:  "House of Partnership - Your relationships, marriage, and open enemies. How you connect with others one-on-one.",
	8:  "House of Transformation - Your shared resources, intimacy, and rebirth. How you transform and regenerate.",
	9:  "House of Philosophy - Your higher education, travel, and beliefs. Your quest for meaning and truth.",
	10: "House of Career - Your profession, reputation, and public life. Your contribution to society and legacy.",
	11: "House of Friendships - Your hopes, social circles, and networks. Your connection to groups and humanity.",
	12: "House of the Subconscious - Your spirituality, secrets, and solitude. Your inner world and hidden strengths.",
}

var aspectTexts = [...]string{
	domain.Conjunction:    "Intense blending and focusing of energies. These planets work together strongly.",
	domain.Opposition:     "Tension and polarity requiring balance. These planets represent opposing needs to integrate.",
	domain.Trine:          "Natural flow and harmony. These energies support each other easily and effortlessly.",
	domain.Square:         "Tension and challenge leading to growth. These planets push you to evolve through conflict.",
	domain.Sextile:        "Opportunity and cooperation. These planets offer potential that requires effort to activate.",
	domain.Quincunx:       "Adjustment and realignment needed. These planets ask you to integrate seemingly incompatible needs.",
	domain.Semisextile:    "Subtle tension and growth opportunity. These planets gently push you to expand.",
	domain.Semisquare:     "Mild friction and motivation. These planets create productive tension.",
	domain.Sesquiquadrate: "Persistent challenge requiring creative solutions. These planets demand innovative approaches.",
}

const (
	sunFallback    = "Your Sun sign reveals your core identity and life purpose."
	moonFallback   = "Your Moon sign reveals your emotional nature."
	houseFallback  = "This placement influences how you express this planet's energy."
	aspectFallback = "These planets interact in a significant way."
)
