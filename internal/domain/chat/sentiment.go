package chat

import "strings"

// Heurística de sentimiento: conteo de keywords fijas por substring,
// sin tokenización. Es deliberadamente cruda: una señal determinística
// y barata, no un modelo de lenguaje. Eso implica que "no" matchea
// dentro de "note" — comportamiento conocido y testeado, no se "arregla".
var (
	positiveWords = []string{
		"love", "happy", "joy", "great", "awesome", "wonderful", "good",
		"nice", "beautiful", "amazing", "excited", "yes", "perfect", "best",
	}
	negativeWords = []string{
		"hate", "sad", "bad", "terrible", "awful", "horrible", "no",
		"never", "angry", "upset", "disappointed", "lonely", "miss",
	}
)

// Etiquetas de emoción derivadas del score.
const (
	EmotionHappy   = "happy"
	EmotionContent = "content"
	EmotionNeutral = "neutral"
	EmotionSad     = "sad"
	EmotionVerySad = "very_sad"
)

// Score mapea texto libre a un escalar en [-1,1]. Case-insensitive.
// Sin keywords de ninguna lista => 0.
func Score(text string) float64 {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return 0.0
	}

	score := float64(positive-negative) / float64(max(total, 1))
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}

// EmotionFor es una escalera de umbrales total sobre los reales:
// los cinco rangos particionan la recta sin huecos ni solapes
// (bordes exclusivos: se usa >, no >=).
func EmotionFor(score float64) string {
	switch {
	case score > 0.5:
		return EmotionHappy
	case score > 0.2:
		return EmotionContent
	case score > -0.2:
		return EmotionNeutral
	case score > -0.5:
		return EmotionSad
	default:
		return EmotionVerySad
	}
}
