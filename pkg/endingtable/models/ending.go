package models

// Canonical column names of the ending table.
const (
	ColumnEndingID  = "ending_id"
	ColumnMoodMin   = "mood_min"
	ColumnMoodMax   = "mood_max"
	ColumnPlayerWin = "player_win"
	ColumnTitle     = "title"
	ColumnBodyText  = "body_text"
)

// RequiredColumns lists the columns every ending table must carry, in the
// order they are reported when missing.
var RequiredColumns = []string{
	ColumnEndingID,
	ColumnMoodMin,
	ColumnMoodMax,
	ColumnPlayerWin,
	ColumnTitle,
	ColumnBodyText,
}

// ColumnAliases maps each canonical column to the localized header used by
// the content team's workbook.
var ColumnAliases = map[string]string{
	ColumnEndingID:  "结局编号",
	ColumnMoodMin:   "心情值下限",
	ColumnMoodMax:   "心情值上限",
	ColumnPlayerWin: "玩家获胜",
	ColumnTitle:     "标题",
	ColumnBodyText:  "文本",
}

// EndingRecord is one narrative ending as read by the game's data loader.
// Field order and JSON names are the loader's contract; MinScore and MaxScore
// carry the mood bounds.
type EndingRecord struct {
	// ID identifies the ending. Uniqueness is not checked.
	ID int `json:"Id"`
	// MinScore is the inclusive lower mood bound.
	MinScore int `json:"MinScore"`
	// MaxScore is the inclusive upper mood bound.
	MaxScore int `json:"MaxScore"`
	// PlayerWin reports whether the ending is a player victory.
	PlayerWin bool `json:"PlayerWin"`
	// Title is the ending title.
	Title string `json:"title"`
	// EndingText holds the body split into display steps.
	EndingText []string `json:"EndingText"`
	// ImagesName is reserved for per-step images and always empty here.
	ImagesName []string `json:"ImagesName"`
}
