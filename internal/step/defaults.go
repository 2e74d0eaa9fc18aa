package step

import (
	"strings"
)

// Registered step type identifiers. These are the values StepSpec.Type
// carries in stored configuration.
const (
	TypeWait           = "wait"
	TypeDelay          = "delay"
	TypeWaitUntil      = "wait_until"
	TypeLaunchProfile  = "launch_profile"
	TypeRenderTemplate = "render_template"
	TypeCopyOutput     = "copy_output"
	TypeHotkey         = "hotkey"
	TypeText           = "text"
	TypeTypeText       = "type_text"
	TypePaste          = "paste"
	TypePasteHistory   = "paste_history"
	TypeSetClipboard   = "set_clipboard"
	TypeOpenApp        = "open_app"
	TypeOpenURL        = "open_url"
	TypeRun            = "run"
	TypeMoveFile       = "move_file"
	TypeMoveFiles      = "move_files"
	TypeFocusWindow    = "focus_window"
	TypeFocusApp       = "focus_app"
	TypeClick          = "click"
	TypeJiggle         = "jiggle"
)

// RegisterDefaults registers every built-in step type. Safe to call more than
// once; types already registered are left alone.
func RegisterDefaults() {
	builders := map[string]Builder{
		TypeWait:           newWait,
		TypeDelay:          newDelay,
		TypeWaitUntil:      newWaitUntil,
		TypeLaunchProfile:  newLaunchProfile,
		TypeRenderTemplate: newRenderTemplate,
		TypeCopyOutput:     newCopyOutput,
		TypeHotkey:         newHotkey,
		TypeText:           newText,
		TypeTypeText:       newTypeText,
		TypePaste:          newPaste,
		TypePasteHistory:   newPasteHistory,
		TypeSetClipboard:   newSetClipboard,
		TypeOpenApp:        newOpenApp,
		TypeOpenURL:        newOpenURL,
		TypeRun:            newRunCommand,
		TypeMoveFile:       newMoveFile,
		TypeMoveFiles:      newMoveFiles,
		TypeFocusWindow:    newFocusWindow,
		TypeFocusApp:       newFocusApp,
		TypeClick:          newClick,
		TypeJiggle:         newJiggle,
	}

	for stepType, builder := range builders {
		_ = Register(stepType, builder)
	}
}

func newWait(p Params) (Step, error) {
	ms, err := p.Int("ms", 250)
	if err != nil {
		return nil, err
	}
	return &WaitStep{MS: ms}, nil
}

func newDelay(p Params) (Step, error) {
	seconds, err := p.Int("seconds", 1)
	if err != nil {
		return nil, err
	}
	return &DelayStep{Seconds: seconds}, nil
}

func newWaitUntil(p Params) (Step, error) {
	return &WaitUntilStep{Target: p.String("time", "")}, nil
}

func newLaunchProfile(p Params) (Step, error) {
	delayMS, err := p.Int("delay_ms", 300)
	if err != nil {
		return nil, err
	}
	return &LaunchProfileStep{Profile: p.String("profile", ""), DelayMS: delayMS}, nil
}

func newRenderTemplate(p Params) (Step, error) {
	return &RenderTemplateStep{
		TemplateID: p.String("template_id", ""),
		OutputKey:  p.String("output_key", "rendered_text"),
	}, nil
}

func newCopyOutput(p Params) (Step, error) {
	return &CopyOutputStep{OutputKey: p.String("output_key", "")}, nil
}

func newHotkey(p Params) (Step, error) {
	var keys []string
	if raw, ok := p["keys"].(string); ok {
		keys = strings.Split(raw, "+")
	} else {
		keys = p.StringList("keys")
	}
	return &HotkeyStep{Keys: keys}, nil
}

func newText(p Params) (Step, error) {
	return &TextStep{Text: p.String("text", "")}, nil
}

func newTypeText(p Params) (Step, error) {
	interval, err := p.Float("interval", 0.02)
	if err != nil {
		return nil, err
	}
	return &TypeTextStep{Text: p.String("text", ""), Interval: interval}, nil
}

func newPaste(Params) (Step, error) {
	return &PasteStep{}, nil
}

func newPasteHistory(p Params) (Step, error) {
	index, err := p.Int("history_index", 0)
	if err != nil {
		return nil, err
	}
	return &PasteHistoryStep{Index: index}, nil
}

func newSetClipboard(p Params) (Step, error) {
	return &SetClipboardStep{Text: p.String("text", "")}, nil
}

func newOpenApp(p Params) (Step, error) {
	return &OpenAppStep{Path: p.String("path", "")}, nil
}

func newOpenURL(p Params) (Step, error) {
	return &OpenURLStep{URL: p.String("url", "")}, nil
}

func newRunCommand(p Params) (Step, error) {
	return &RunCommandStep{Command: p.String("command", "")}, nil
}

func newMoveFile(p Params) (Step, error) {
	return &MoveFileStep{Src: p.String("src", ""), Dest: p.String("dest", "")}, nil
}

func newMoveFiles(p Params) (Step, error) {
	return &MoveFilesStep{Sources: p.StringList("sources"), Dest: p.String("dest", "")}, nil
}

func newFocusWindow(p Params) (Step, error) {
	return &FocusWindowStep{Title: p.String("title", ""), OnFail: p.String("on_fail", OnFailWarn)}, nil
}

func newFocusApp(p Params) (Step, error) {
	return &FocusAppStep{Title: p.String("title", ""), OnFail: p.String("on_fail", OnFailWarn)}, nil
}

func newClick(p Params) (Step, error) {
	x, err := p.Int("x", 0)
	if err != nil {
		return nil, err
	}
	y, err := p.Int("y", 0)
	if err != nil {
		return nil, err
	}
	clicks, err := p.Int("clicks", 1)
	if err != nil {
		return nil, err
	}
	interval, err := p.Float("interval", 0.1)
	if err != nil {
		return nil, err
	}
	return &ClickStep{X: x, Y: y, Button: p.String("button", "left"), Clicks: clicks, Interval: interval}, nil
}

func newJiggle(p Params) (Step, error) {
	duration, err := p.Int("duration", 60)
	if err != nil {
		return nil, err
	}
	interval, err := p.Int("interval", 30)
	if err != nil {
		return nil, err
	}
	trackMouse, err := p.Bool("track_mouse", true)
	if err != nil {
		return nil, err
	}
	return &JiggleStep{
		Duration:   duration,
		Pattern:    strings.ToLower(p.String("pattern", PatternNatural)),
		Interval:   interval,
		TrackMouse: trackMouse,
	}, nil
}
