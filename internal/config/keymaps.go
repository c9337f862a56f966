package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	EditItem   string `yaml:"edit_item"`
	DeleteItem string `yaml:"delete_item"`
	ViewItem   string `yaml:"view_item"`

	// Drag gesture
	GrabItem      string `yaml:"grab_item"`
	DropItem      string `yaml:"drop_item"`
	CancelDrag    string `yaml:"cancel_drag"`
	MoveItemLeft  string `yaml:"move_item_left"`
	MoveItemRight string `yaml:"move_item_right"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Columns
	CreateColumn    string `yaml:"create_column"`
	RenameColumn    string `yaml:"rename_column"`
	DeleteColumn    string `yaml:"delete_column"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Boards
	SwitchBoard string `yaml:"switch_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:    "a",
		EditItem:   "e",
		DeleteItem: "d",
		ViewItem:   "v",

		// Drag gesture
		GrabItem:      "g",
		DropItem:      "enter",
		CancelDrag:    "esc",
		MoveItemLeft:  "H",
		MoveItemRight: "L",

		// Forms
		SaveForm: "ctrl+s",

		// Columns
		CreateColumn:    "C",
		RenameColumn:    "R",
		DeleteColumn:    "X",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		// Boards
		SwitchBoard: "tab",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.EditItem == "" {
		k.EditItem = defaults.EditItem
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.ViewItem == "" {
		k.ViewItem = defaults.ViewItem
	}
	if k.GrabItem == "" {
		k.GrabItem = defaults.GrabItem
	}
	if k.DropItem == "" {
		k.DropItem = defaults.DropItem
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.MoveItemLeft == "" {
		k.MoveItemLeft = defaults.MoveItemLeft
	}
	if k.MoveItemRight == "" {
		k.MoveItemRight = defaults.MoveItemRight
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.CreateColumn == "" {
		k.CreateColumn = defaults.CreateColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = defaults.RenameColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = defaults.DeleteColumn
	}
	if k.MoveColumnLeft == "" {
		k.MoveColumnLeft = defaults.MoveColumnLeft
	}
	if k.MoveColumnRight == "" {
		k.MoveColumnRight = defaults.MoveColumnRight
	}
	if k.SwitchBoard == "" {
		k.SwitchBoard = defaults.SwitchBoard
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
