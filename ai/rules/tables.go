package rules

import "github.com/poiesic/scenematch/core"

// category identifies which SceneDescription list a matched tag lands in.
type category int

const (
	categoryEntity category = iota
	categoryEvent
	categoryEnvironment
	categoryTheme
)

// rule maps one lowercased trigger keyword to a scene tag.
// Triggers cover both English and Turkish query text; tags are always
// English so downstream canonicalization and catalog search stay uniform.
type rule struct {
	keyword string
	cat     category
	tag     string
}

// keywordRules is static lookup data, not control flow. Matching walks the
// table in order, so tag insertion order is deterministic. Several triggers
// may map to the same tag; de-duplication is the consumer's job.
var keywordRules = []rule{
	// entities
	{"ship", categoryEntity, "ship"},
	{"gemi", categoryEntity, "ship"},
	{"boat", categoryEntity, "ship"},
	{"iceberg", categoryEntity, "iceberg"},
	{"buzdağı", categoryEntity, "iceberg"},
	{"buzdagi", categoryEntity, "iceberg"},
	{"clown", categoryEntity, "clown"},
	{"palyaço", categoryEntity, "clown"},
	{"palyaco", categoryEntity, "clown"},
	{"shark", categoryEntity, "shark"},
	{"köpekbalığı", categoryEntity, "shark"},
	{"dinosaur", categoryEntity, "dinosaur"},
	{"dinozor", categoryEntity, "dinosaur"},
	{"robot", categoryEntity, "robot"},
	{"alien", categoryEntity, "alien"},
	{"uzaylı", categoryEntity, "alien"},
	{"uzayli", categoryEntity, "alien"},
	{"train", categoryEntity, "train"},
	{"tren", categoryEntity, "train"},
	{"plane", categoryEntity, "airplane"},
	{"uçak", categoryEntity, "airplane"},
	{"ucak", categoryEntity, "airplane"},
	{"car", categoryEntity, "car"},
	{"araba", categoryEntity, "car"},
	{"dog", categoryEntity, "dog"},
	{"köpek", categoryEntity, "dog"},
	{"kid", categoryEntity, "child"},
	{"child", categoryEntity, "child"},
	{"çocuk", categoryEntity, "child"},
	{"cocuk", categoryEntity, "child"},
	{"soldier", categoryEntity, "soldier"},
	{"asker", categoryEntity, "soldier"},
	{"ghost", categoryEntity, "ghost"},
	{"hayalet", categoryEntity, "ghost"},
	{"balloon", categoryEntity, "balloon"},
	{"balon", categoryEntity, "balloon"},
	{"ring", categoryEntity, "ring"},
	{"yüzük", categoryEntity, "ring"},

	// events
	{"sink", categoryEvent, "sinking"},
	{"batma", categoryEvent, "sinking"},
	{"batıyor", categoryEvent, "sinking"},
	{"batiyor", categoryEvent, "sinking"},
	{"battı", categoryEvent, "sinking"},
	{"iceberg", categoryEvent, "collision"},
	{"collision", categoryEvent, "collision"},
	{"crash", categoryEvent, "collision"},
	{"çarpışma", categoryEvent, "collision"},
	{"carpisma", categoryEvent, "collision"},
	{"çarptı", categoryEvent, "collision"},
	{"carpti", categoryEvent, "collision"},
	{"hit", categoryEvent, "collision"},
	{"explosion", categoryEvent, "explosion"},
	{"patlama", categoryEvent, "explosion"},
	{"chase", categoryEvent, "chase"},
	{"kovalamaca", categoryEvent, "chase"},
	{"escape", categoryEvent, "escape"},
	{"kaçış", categoryEvent, "escape"},
	{"kacis", categoryEvent, "escape"},
	{"dies", categoryEvent, "death"},
	{"death", categoryEvent, "death"},
	{"ölüm", categoryEvent, "death"},
	{"olum", categoryEvent, "death"},
	{"ölüyor", categoryEvent, "death"},
	{"drown", categoryEvent, "drowning"},
	{"boğul", categoryEvent, "drowning"},
	{"survives", categoryEvent, "survival"},
	{"survive", categoryEvent, "survival"},
	{"kurtul", categoryEvent, "survival"},
	{"wedding", categoryEvent, "wedding"},
	{"düğün", categoryEvent, "wedding"},
	{"heist", categoryEvent, "heist"},
	{"robbery", categoryEvent, "heist"},
	{"soygun", categoryEvent, "heist"},

	// environment
	{"ocean", categoryEnvironment, "ocean"},
	{"sea", categoryEnvironment, "ocean"},
	{"deniz", categoryEnvironment, "ocean"},
	{"okyanus", categoryEnvironment, "ocean"},
	{"water", categoryEnvironment, "water"},
	{"su", categoryEnvironment, "water"},
	{"space", categoryEnvironment, "space"},
	{"uzay", categoryEnvironment, "space"},
	{"desert", categoryEnvironment, "desert"},
	{"çöl", categoryEnvironment, "desert"},
	{"col", categoryEnvironment, "desert"},
	{"island", categoryEnvironment, "island"},
	{"ada", categoryEnvironment, "island"},
	{"forest", categoryEnvironment, "forest"},
	{"orman", categoryEnvironment, "forest"},
	{"city", categoryEnvironment, "city"},
	{"şehir", categoryEnvironment, "city"},
	{"sehir", categoryEnvironment, "city"},
	{"prison", categoryEnvironment, "prison"},
	{"hapishane", categoryEnvironment, "prison"},
	{"hotel", categoryEnvironment, "hotel"},
	{"otel", categoryEnvironment, "hotel"},
	{"mountain", categoryEnvironment, "mountain"},
	{"dağ", categoryEnvironment, "mountain"},

	// themes
	{"love", categoryTheme, "romance"},
	{"aşk", categoryTheme, "romance"},
	{"ask", categoryTheme, "romance"},
	{"romance", categoryTheme, "romance"},
	{"war", categoryTheme, "war"},
	{"savaş", categoryTheme, "war"},
	{"savas", categoryTheme, "war"},
	{"horror", categoryTheme, "horror"},
	{"korku", categoryTheme, "horror"},
	{"scary", categoryTheme, "horror"},
	{"comedy", categoryTheme, "comedy"},
	{"komedi", categoryTheme, "comedy"},
	{"funny", categoryTheme, "comedy"},
	{"revenge", categoryTheme, "revenge"},
	{"intikam", categoryTheme, "revenge"},
	{"friendship", categoryTheme, "friendship"},
	{"arkadaşlık", categoryTheme, "friendship"},
}

// timeHintRule maps a trigger keyword to an era classification.
type timeHintRule struct {
	keyword string
	hint    core.TimeHint
}

// First match wins, so more specific triggers come first.
var timeHintRules = []timeHintRule{
	{"future", core.TimeHintFuture},
	{"gelecek", core.TimeHintFuture},
	{"spaceship", core.TimeHintFuture},
	{"cyborg", core.TimeHintFuture},
	{"medieval", core.TimeHintHistorical},
	{"ortaçağ", core.TimeHintHistorical},
	{"historical", core.TimeHintHistorical},
	{"tarihi", core.TimeHintHistorical},
	{"ancient", core.TimeHintHistorical},
	{"antik", core.TimeHintHistorical},
	{"kingdom", core.TimeHintHistorical},
	{"krallık", core.TimeHintHistorical},
}
