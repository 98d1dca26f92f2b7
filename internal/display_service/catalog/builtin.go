package catalog

import "github.com/dialware/golang_services/internal/display_service/domain"

// builtinEnglish is the authoritative default text for every catalog key.
// Locale bundles and runtime overrides layer on top of it; it must stay
// total over domain.KnownLabelKeys so Text never comes back empty.
var builtinEnglish = map[domain.LabelKey]string{
	"call_custom":       "Call custom",
	"call_home":         "Call home",
	"call_mobile":       "Call mobile",
	"call_work":         "Call work",
	"call_fax_work":     "Call work fax",
	"call_fax_home":     "Call home fax",
	"call_pager":        "Call pager",
	"call_other":        "Call other",
	"call_callback":     "Call callback",
	"call_car":          "Call car",
	"call_company_main": "Call company main",
	"call_isdn":         "Call ISDN",
	"call_main":         "Call main",
	"call_other_fax":    "Call fax",
	"call_radio":        "Call radio",
	"call_telex":        "Call telex",
	"call_tty_tdd":      "Call TTY/TDD",
	"call_work_mobile":  "Call work mobile",
	"call_work_pager":   "Call work pager",
	"call_assistant":    "Call assistant",
	"call_mms":          "Call MMS",

	"sms_custom":       "Text custom",
	"sms_home":         "Text home",
	"sms_mobile":       "Text mobile",
	"sms_work":         "Text work",
	"sms_fax_work":     "Text work fax",
	"sms_fax_home":     "Text home fax",
	"sms_pager":        "Text pager",
	"sms_other":        "Text other",
	"sms_callback":     "Text callback",
	"sms_car":          "Text car",
	"sms_company_main": "Text company main",
	"sms_isdn":         "Text ISDN",
	"sms_main":         "Text main",
	"sms_other_fax":    "Text fax",
	"sms_radio":        "Text radio",
	"sms_telex":        "Text telex",
	"sms_tty_tdd":      "Text TTY/TDD",
	"sms_work_mobile":  "Text work mobile",
	"sms_work_pager":   "Text work pager",
	"sms_assistant":    "Text assistant",
	"sms_mms":          "Text MMS",

	"type_custom":       "Custom",
	"type_home":         "Home",
	"type_mobile":       "Mobile",
	"type_work":         "Work",
	"type_fax_work":     "Work Fax",
	"type_fax_home":     "Home Fax",
	"type_pager":        "Pager",
	"type_other":        "Other",
	"type_callback":     "Callback",
	"type_car":          "Car",
	"type_company_main": "Company Main",
	"type_isdn":         "ISDN",
	"type_main":         "Main",
	"type_other_fax":    "Other Fax",
	"type_radio":        "Radio",
	"type_telex":        "Telex",
	"type_tty_tdd":      "TTY TDD",
	"type_work_mobile":  "Work Mobile",
	"type_work_pager":   "Work Pager",
	"type_assistant":    "Assistant",
	"type_mms":          "MMS",
}
