package internal

import "time"

// UserRecord is a row of the admin user listing
type UserRecord struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Role       UserRole `json:"role" yaml:"role"`
	Status     string   `json:"status" yaml:"status"`
	JoinDate   string   `json:"joinDate" yaml:"join_date"`
	LastActive string   `json:"lastActive" yaml:"last_active"`
	TotalChats int      `json:"totalChats" yaml:"total_chats"`
}

var mockUsers = []UserRecord{
	{ID: 1, Name: "Admin User", Email: "admin@roblox.ai", Role: UserRoleAdmin, Status: "active", JoinDate: "2024-01-15", LastActive: "2024-12-02", TotalChats: 156},
	{ID: 2, Name: "John Developer", Email: "john@example.com", Role: UserRoleUser, Status: "active", JoinDate: "2024-02-20", LastActive: "2024-12-01", TotalChats: 89},
	{ID: 3, Name: "Jane Smith", Email: "jane@example.com", Role: UserRoleUser, Status: "active", JoinDate: "2024-03-10", LastActive: "2024-11-30", TotalChats: 134},
	{ID: 4, Name: "Bob Wilson", Email: "bob@example.com", Role: UserRoleUser, Status: "inactive", JoinDate: "2024-01-05", LastActive: "2024-10-15", TotalChats: 45},
	{ID: 5, Name: "Alice Brown", Email: "alice@example.com", Role: UserRoleModerator, Status: "active", JoinDate: "2024-02-01", LastActive: "2024-12-02", TotalChats: 201},
}

// Overview is the headline of the analytics view
type Overview struct {
	TotalUsers      int     `json:"totalUsers" yaml:"total_users"`
	ActiveUsers     int     `json:"activeUsers" yaml:"active_users"`
	TotalChats      int     `json:"totalChats" yaml:"total_chats"`
	AvgResponseTime float64 `json:"avgResponseTime" yaml:"avg_response_time"`
}

type GrowthPoint struct {
	Month string `json:"month" yaml:"month"`
	Users int    `json:"users" yaml:"users"`
	Chats int    `json:"chats" yaml:"chats"`
}

type CategoryUsage struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type TopPrompt struct {
	Prompt   string `json:"prompt" yaml:"prompt"`
	Count    int    `json:"count" yaml:"count"`
	Category string `json:"category" yaml:"category"`
}

type Activity struct {
	ID        int    `json:"id" yaml:"id"`
	User      string `json:"user" yaml:"user"`
	Action    string `json:"action" yaml:"action"`
	Category  string `json:"category" yaml:"category"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Analytics is the full analytics report
type Analytics struct {
	Overview       Overview        `json:"overview" yaml:"overview"`
	UserGrowth     []GrowthPoint   `json:"userGrowth" yaml:"user_growth"`
	CategoryUsage  []CategoryUsage `json:"categoryUsage" yaml:"category_usage"`
	TopPrompts     []TopPrompt     `json:"topPrompts" yaml:"top_prompts"`
	RecentActivity []Activity      `json:"recentActivity" yaml:"recent_activity"`
}

// CategoryStat summarises one category
type CategoryStat struct {
	Category        string  `json:"category" yaml:"category"`
	TotalQueries    int     `json:"totalQueries" yaml:"total_queries"`
	AvgResponseTime float64 `json:"avgResponseTime" yaml:"avg_response_time"`
	Satisfaction    float64 `json:"satisfaction" yaml:"satisfaction"`
	Trend           string  `json:"trend" yaml:"trend"`
}

var categoryStats = []CategoryStat{
	{Category: "Coding", TotalQueries: 4200, AvgResponseTime: 1.1, Satisfaction: 4.8, Trend: "+12%"},
	{Category: "Design", TotalQueries: 2800, AvgResponseTime: 1.3, Satisfaction: 4.6, Trend: "+8%"},
	{Category: "Optimization", TotalQueries: 1900, AvgResponseTime: 1.0, Satisfaction: 4.9, Trend: "+15%"},
	{Category: "Learning", TotalQueries: 3100, AvgResponseTime: 1.4, Satisfaction: 4.7, Trend: "+10%"},
	{Category: "General", TotalQueries: 2400, AvgResponseTime: 1.2, Satisfaction: 4.5, Trend: "+5%"},
}

// AnalyticsService serves the admin listings. Everything except the
// counters is static.
type AnalyticsService struct {
	tracker *Tracker
	now     func() time.Time
}

// NewAnalyticsService creates an AnalyticsService over tracker
func NewAnalyticsService(tracker *Tracker) *AnalyticsService {
	return &AnalyticsService{tracker: tracker, now: time.Now}
}

// Users returns the user listing
func (s *AnalyticsService) Users() []UserRecord {
	return append([]UserRecord(nil), mockUsers...)
}

// UserByID looks up a listed user
func (s *AnalyticsService) UserByID(id int) (UserRecord, bool) {
	for _, u := range mockUsers {
		if u.ID == id {
			return u, true
		}
	}
	return UserRecord{}, false
}

// CategoryStats returns per-category usage figures
func (s *AnalyticsService) CategoryStats() []CategoryStat {
	return append([]CategoryStat(nil), categoryStats...)
}

// Report builds the analytics report, with the live counters in the
// overview and the last growth point
func (s *AnalyticsService) Report() Analytics {
	stats := s.tracker.Stats()
	now := s.now().UTC()
	ago := func(minutes int) string {
		return now.Add(-time.Duration(minutes) * time.Minute).Format(time.RFC3339)
	}

	return Analytics{
		Overview: Overview{
			TotalUsers:      stats.TotalUsers,
			ActiveUsers:     stats.ActiveUsers,
			TotalChats:      stats.TotalChats,
			AvgResponseTime: 1.2,
		},
		UserGrowth: []GrowthPoint{
			{Month: "Jan", Users: 400, Chats: 2400},
			{Month: "Feb", Users: 600, Chats: 3200},
			{Month: "Mar", Users: 800, Chats: 4100},
			{Month: "Apr", Users: 1000, Chats: 5200},
			{Month: "May", Users: stats.TotalUsers, Chats: stats.TotalChats},
		},
		CategoryUsage: []CategoryUsage{
			{Name: "Coding", Value: 4200},
			{Name: "Design", Value: 2800},
			{Name: "Optimization", Value: 1900},
			{Name: "Learning", Value: 3100},
			{Name: "General", Value: 2400},
		},
		TopPrompts: []TopPrompt{
			{Prompt: "Buat sistem inventory", Count: 342, Category: CategoryCoding},
			{Prompt: "Optimize mobile performance", Count: 289, Category: CategoryOptimization},
			{Prompt: "Desain shop UI", Count: 256, Category: CategoryDesign},
			{Prompt: "RemoteEvents tutorial", Count: 234, Category: CategoryLearning},
			{Prompt: "Combat system guide", Count: 198, Category: CategoryCoding},
		},
		RecentActivity: []Activity{
			{ID: 1, User: "John Doe", Action: "Started a new chat session", Category: CategoryCoding, Timestamp: ago(2)},
			{ID: 2, User: "Jane Smith", Action: "Generated Lua code snippet", Category: CategoryCoding, Timestamp: ago(15)},
			{ID: 3, User: "Bob Wilson", Action: "Asked about UI design", Category: CategoryDesign, Timestamp: ago(60)},
			{ID: 4, User: "Alice Brown", Action: "Requested optimization tips", Category: CategoryOptimization, Timestamp: ago(120)},
		},
	}
}
