package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "code").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "value_parse":
			return "値を解釈できません"
		case "unknown_group_code":
			return "未知のグループコードです"
		case "subclass_mismatch":
			return "サブクラスマーカーが一致しません"
		case "version_gated":
			return "このバージョンでは無効なフィールドです"
		case "overflow":
			return "範囲を超えています"
		case "truncated":
			return "打ち切られました"
		case "stream_failure":
			return "入出力エラー"
		case "precondition":
			return "呼び出し前提条件に違反しています"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "value_parse":
			return "value does not match declared kind"
		case "unknown_group_code":
			return "unknown group code"
		case "subclass_mismatch":
			return "subclass marker mismatch"
		case "version_gated":
			return "field not valid at this format version"
		case "overflow":
			return "out of range"
		case "truncated":
			return "truncated"
		case "stream_failure":
			return "stream failure"
		case "precondition":
			return "precondition violation"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
