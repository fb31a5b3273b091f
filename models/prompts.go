package models

// PromptsConfig holds the two free-text draft-generation prompt templates,
// one per locale. Templates may reference {{topic}} and {{context}}.
type PromptsConfig struct {
	PromptEN string `json:"promptEn"`
	PromptTR string `json:"promptTr"`
}

// MaxPromptLength bounds each template; enforced on admin writes.
const MaxPromptLength = 10_000

const defaultPromptEN = `You are a technical blog author. Given a topic or outline, write a blog post in English. Respond with a single JSON object (no markdown wrapper) with exactly these keys: "title" (string), "description" (string, 1-2 sentences for SEO), "tags" (array of strings, 3-6 technical tags), "content" (string, markdown body with headings and paragraphs). Use {{topic}} for the user's topic. If {{context}} is provided, use it as reference or source material. Write in a clear, professional tone suitable for a personal tech blog.`

const defaultPromptTR = `Teknik bir blog yazarısınız. Verilen bir konu veya taslak üzerine Türkçe bir blog yazısı yazın. Yanıtınızı tek bir JSON nesnesi olarak verin (markdown sarmalayıcı kullanmayın), tam olarak şu anahtarlarla: "title" (string), "description" (string, SEO için 1-2 cümle), "tags" (string dizisi, 3-6 teknik etiket), "content" (string, başlıklar ve paragraflarla markdown gövde). Kullanıcının konusu için {{topic}} kullanın. {{context}} verilmişse referans veya kaynak olarak kullanın. Kişisel bir teknik blog için net ve profesyonel bir üslup kullanın.`

// DefaultPrompts returns the in-code prompt templates used when the config
// file is missing or invalid, and for the admin "reset to defaults" flow.
func DefaultPrompts() PromptsConfig {
	return PromptsConfig{
		PromptEN: defaultPromptEN,
		PromptTR: defaultPromptTR,
	}
}

// Template returns the prompt template for the given locale.
func (c PromptsConfig) Template(locale Locale) string {
	if locale == LocaleTR {
		return c.PromptTR
	}
	return c.PromptEN
}
