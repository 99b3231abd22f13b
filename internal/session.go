package internal

// Session is a point-in-time snapshot of the chat, used for export
type Session struct {
	ID       string    `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"` // "localStorage"
	Category string    `json:"category" yaml:"category"`
	User     string    `json:"user,omitempty" yaml:"user,omitempty"`
	Messages []Message `json:"messages" yaml:"messages"`
	Metadata Metadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata contains additional session information
type Metadata struct {
	Name         string       `json:"name,omitempty" yaml:"name,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    string       `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	MessageCount int          `json:"message_count" yaml:"message_count"`
	Stats        MessageStats `json:"stats" yaml:"stats"`
	CodeBlocks   int          `json:"code_blocks,omitempty" yaml:"code_blocks,omitempty"`
}
