package internal

import (
	"fmt"
	"strings"
)

// fences are written as ~ in the table below and restored on init
var demoFences = strings.NewReplacer("~~~", "```", "~", "`")

var demoResponses = map[string]string{}

func init() {
	for category, text := range rawDemoResponses {
		demoResponses[category] = demoFences.Replace(text)
	}
}

var rawDemoResponses = map[string]string{
	CategoryCoding: `# Demo Mode - AI Response

Terima kasih atas pertanyaan tentang coding! 

## Contoh Code Lua/Luau:

~~~lua
-- Sistem Inventory Sederhana
local Inventory = {}
Inventory.__index = Inventory

function Inventory.new()
    local self = setmetatable({}, Inventory)
    self.items = {}
    self.maxSize = 20
    return self
end

function Inventory:AddItem(item)
    if #self.items < self.maxSize then
        table.insert(self.items, item)
        return true
    end
    return false
end

function Inventory:RemoveItem(itemName)
    for i, item in ipairs(self.items) do
        if item.name == itemName then
            table.remove(self.items, i)
            return true
        end
    end
    return false
end

-- Usage
local playerInventory = Inventory.new()
playerInventory:AddItem({name = "Sword", damage = 10})
~~~

**Note:** Ini adalah demo response. Untuk menggunakan AI yang sesungguhnya, tambahkan Anthropic API key di file ~.env~:

~~~
REACT_APP_ANTHROPIC_API_KEY=sk-ant-api03-xxxxx
~~~

Anda bisa dapatkan API key di: https://console.anthropic.com`,
	CategoryDesign: `# Demo Mode - Design Response

Untuk desain UI shop yang menarik di Roblox, saya sarankan:

## 🎨 Design Principles:

1. **Color Scheme**: Gunakan warna yang kontras
   - Background: Dark colors (#1e293b)
   - Buttons: Bright colors (#3b82f6, #10b981)
   - Text: White/Light colors untuk readability

2. **Layout**: 
   - Grid system untuk item display
   - Clear navigation
   - Price tags yang prominent

3. **User Experience**:
   - Smooth transitions
   - Hover effects
   - Clear feedback untuk purchases

**Note:** Mode demo aktif. Tambahkan API key untuk response AI yang lebih detail dan personal.`,
	CategoryOptimization: `# Demo Mode - Optimization Tips

## 🚀 Performance Optimization Tips:

### 1. Reduce Part Count
- Gunakan meshes instead of multiple parts
- Combine decorative elements
- Use unions wisely

### 2. Script Optimization
~~~lua
-- Bad
while true do
    wait()
    -- code
end

-- Good  
local RunService = game:GetService("RunService")
RunService.Heartbeat:Connect(function()
    -- code
end)
~~~

### 3. Memory Management
- Remove unused objects
- Use object pooling
- Avoid memory leaks

**Note:** Demo mode. API key needed for detailed analysis.`,
	CategoryLearning: `# Demo Mode - Learning Resource

## 📚 RemoteEvents vs RemoteFunctions

### RemoteEvents
- **Fire and forget**: Client tidak menunggu response
- **One-way communication**: Client → Server atau Server → Client
- **Use case**: Notifications, updates yang tidak butuh response

~~~lua
-- Server
remoteEvent.OnServerEvent:Connect(function(player, data)
    print(player.Name .. " sent: " .. data)
end)

-- Client
remoteEvent:FireServer("Hello Server!")
~~~

### RemoteFunctions
- **Request-Response**: Client menunggu return value
- **Two-way communication**: Bisa return data
- **Use case**: Request data, validate actions

**Note:** Demo response. Enable API for interactive learning.`,
	CategoryGeneral: `# Demo Mode Aktif 🤖

Terima kasih telah menggunakan Roblox AI Studio!

Saat ini Anda dalam **demo mode** karena API key belum dikonfigurasi. 

## Cara Mengaktifkan AI Sebenarnya:

1. Dapatkan API key dari Anthropic:
   - Kunjungi: https://console.anthropic.com
   - Sign up / Login
   - Generate API key

2. Tambahkan ke file ~.env~:
   ~~~
   REACT_APP_ANTHROPIC_API_KEY=sk-ant-api03-xxxxx
   ~~~

3. Restart development server:
   ~~~bash
   npm start
   ~~~

Setelah itu, Anda bisa chat dengan Claude AI yang sesungguhnya! 🎉

Pertanyaan Anda: "%s..."`,
}

// DemoResponse returns the canned reply for category. The general reply
// quotes the first 100 characters of content.
func DemoResponse(content, category string) string {
	category = NormalizeCategory(category)
	if category == CategoryGeneral {
		return fmt.Sprintf(demoResponses[CategoryGeneral], truncateRunes(content, 100))
	}
	return demoResponses[category]
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
