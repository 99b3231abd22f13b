package internal

import "strings"

const (
	AppName        = "Roblox AI Studio"
	AppDescription = "AI Assistant for Roblox Studio Developers"
)

// Storage keys
const (
	ChatHistoryKey   = "roblox_ai_chat_history"
	UserKey          = "roblox_ai_user"
	TokenKey         = "roblox_ai_token"
	CurrentUserIDKey = "current_user_id"
	SiteConfigKey    = "site_config"
	CategoryKey      = "roblox_ai_category"
)

// Category ids
const (
	CategoryGeneral      = "general"
	CategoryCoding       = "coding"
	CategoryDesign       = "design"
	CategoryOptimization = "optimization"
	CategoryLearning     = "learning"
)

// Category selects the instruction template for a conversation
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Categories lists the supported categories in display order
var Categories = []Category{
	{ID: CategoryGeneral, Name: "General", Description: "General questions and help"},
	{ID: CategoryCoding, Name: "Coding", Description: "Lua/Luau code generation and help"},
	{ID: CategoryDesign, Name: "Design", Description: "UI/UX design suggestions"},
	{ID: CategoryOptimization, Name: "Optimization", Description: "Performance optimization tips"},
	{ID: CategoryLearning, Name: "Learning", Description: "Tutorials and learning resources"},
}

// QuickPrompt is a canned question offered to new users
type QuickPrompt struct {
	Text        string `json:"text" yaml:"text"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

var QuickPrompts = []QuickPrompt{
	{Text: "Buat sistem inventory sederhana", Category: CategoryCoding, Description: "Generate basic inventory system code"},
	{Text: "Cara optimize game untuk mobile", Category: CategoryOptimization, Description: "Mobile optimization techniques"},
	{Text: "Desain shop UI yang menarik", Category: CategoryDesign, Description: "Shop UI design suggestions"},
	{Text: "Explain RemoteEvents vs RemoteFunctions", Category: CategoryLearning, Description: "Learn about Roblox networking"},
	{Text: "Buat sistem combat sederhana", Category: CategoryCoding, Description: "Basic combat system implementation"},
	{Text: "Tips mengurangi lag di game", Category: CategoryOptimization, Description: "Lag reduction strategies"},
}

var systemPrompts = map[string]string{
	CategoryGeneral:      "Anda adalah AI assistant ahli dalam Roblox Studio development. Berikan jawaban yang jelas, praktis, dan mudah dipahami dalam Bahasa Indonesia. Sertakan contoh kode jika diperlukan.",
	CategoryCoding:       "Anda adalah expert programmer Lua/Luau untuk Roblox Studio. Fokus pada penulisan kode yang clean, efficient, dan mengikuti best practices. Selalu sertakan penjelasan untuk setiap bagian kode. Gunakan Bahasa Indonesia untuk penjelasan, tapi kode tetap dalam Lua/Luau.",
	CategoryDesign:       "Anda adalah UI/UX designer untuk Roblox games. Berikan saran desain yang modern, user-friendly, dan sesuai dengan estetika Roblox. Sertakan contoh implementasi GUI jika relevan. Gunakan Bahasa Indonesia.",
	CategoryOptimization: "Anda adalah expert dalam optimasi performa Roblox games. Fokus pada techniques untuk meningkatkan FPS, mengurangi lag, dan membuat game lebih efficient. Berikan tips praktis yang bisa langsung diimplementasikan. Gunakan Bahasa Indonesia.",
	CategoryLearning:     "Anda adalah mentor yang sabar untuk developer Roblox pemula hingga advanced. Jelaskan konsep dengan cara yang mudah dipahami, gunakan analogi, dan berikan step-by-step guide. Gunakan Bahasa Indonesia.",
}

// WelcomeMessage is the assistant greeting shown for an empty history
const WelcomeMessage = "Halo! Saya AI Assistant untuk Roblox Studio. Saya siap membantu Anda dengan:\n\n" +
	"• Menulis & debug kode Lua/Luau\n" +
	"• Membuat sistem game (inventory, shop, combat, dll)\n" +
	"• Desain UI/UX untuk game Anda\n" +
	"• Optimasi performa & best practices\n" +
	"• Tips & trik development\n\n" +
	"Ada yang bisa saya bantu hari ini?"

// SystemPrompt returns the instruction template for category, general if unknown
func SystemPrompt(category string) string {
	if p, ok := systemPrompts[NormalizeCategory(category)]; ok {
		return p
	}
	return systemPrompts[CategoryGeneral]
}

// NormalizeCategory lower-cases category and maps unknown ids to general
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if IsValidCategory(c) {
		return c
	}
	return CategoryGeneral
}

// IsValidCategory reports whether id names a known category
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// LookupCategory returns the category with id
func LookupCategory(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FilterPrompts returns the quick prompts whose text or description contains
// search (case-insensitive) and whose category matches; "" or "all" matches
// every category
func FilterPrompts(prompts []QuickPrompt, search, category string) []QuickPrompt {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []QuickPrompt
	for _, p := range prompts {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Text), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
