package domain

// PhoneType is the numeric kind attached to a phone number in the contact
// store. The values are the store's wire codes and must not be renumbered.
type PhoneType int

const (
	TypeCustom      PhoneType = 0
	TypeHome        PhoneType = 1
	TypeMobile      PhoneType = 2
	TypeWork        PhoneType = 3
	TypeFaxWork     PhoneType = 4
	TypeFaxHome     PhoneType = 5
	TypePager       PhoneType = 6
	TypeOther       PhoneType = 7
	TypeCallback    PhoneType = 8
	TypeCar         PhoneType = 9
	TypeCompanyMain PhoneType = 10
	TypeISDN        PhoneType = 11
	TypeMain        PhoneType = 12
	TypeOtherFax    PhoneType = 13
	TypeRadio       PhoneType = 14
	TypeTelex       PhoneType = 15
	TypeTTYTDD      PhoneType = 16
	TypeWorkMobile  PhoneType = 17
	TypeWorkPager   PhoneType = 18
	TypeAssistant   PhoneType = 19
	TypeMMS         PhoneType = 20
)

// Interaction distinguishes what the user is about to do with a number.
// The values are wire codes shared with API clients.
type Interaction int

const (
	InteractionCall Interaction = 1
	InteractionSMS  Interaction = 2
)

// LabelKey names one entry in the display-string catalog.
type LabelKey string

// labelKeySet holds the three catalog keys belonging to one phone type:
// the call phrasing, the SMS phrasing and the bare generic name.
type labelKeySet struct {
	call    LabelKey
	sms     LabelKey
	generic LabelKey
}

// labelKeys is the single source of truth mapping phone types to catalog
// keys. Interaction-specific lookups select a column of this table.
var labelKeys = map[PhoneType]labelKeySet{
	TypeCustom:      {"call_custom", "sms_custom", "type_custom"},
	TypeHome:        {"call_home", "sms_home", "type_home"},
	TypeMobile:      {"call_mobile", "sms_mobile", "type_mobile"},
	TypeWork:        {"call_work", "sms_work", "type_work"},
	TypeFaxWork:     {"call_fax_work", "sms_fax_work", "type_fax_work"},
	TypeFaxHome:     {"call_fax_home", "sms_fax_home", "type_fax_home"},
	TypePager:       {"call_pager", "sms_pager", "type_pager"},
	TypeOther:       {"call_other", "sms_other", "type_other"},
	TypeCallback:    {"call_callback", "sms_callback", "type_callback"},
	TypeCar:         {"call_car", "sms_car", "type_car"},
	TypeCompanyMain: {"call_company_main", "sms_company_main", "type_company_main"},
	TypeISDN:        {"call_isdn", "sms_isdn", "type_isdn"},
	TypeMain:        {"call_main", "sms_main", "type_main"},
	TypeOtherFax:    {"call_other_fax", "sms_other_fax", "type_other_fax"},
	TypeRadio:       {"call_radio", "sms_radio", "type_radio"},
	TypeTelex:       {"call_telex", "sms_telex", "type_telex"},
	TypeTTYTDD:      {"call_tty_tdd", "sms_tty_tdd", "type_tty_tdd"},
	TypeWorkMobile:  {"call_work_mobile", "sms_work_mobile", "type_work_mobile"},
	TypeWorkPager:   {"call_work_pager", "sms_work_pager", "type_work_pager"},
	TypeAssistant:   {"call_assistant", "sms_assistant", "type_assistant"},
	TypeMMS:         {"call_mms", "sms_mms", "type_mms"},
}

// IsCustomType reports whether the type carries a caller-supplied label
// instead of a fixed catalog string. Assistant numbers are bundled with
// custom ones on purpose: the contact store keeps free-form labels for both.
// A nil type is not custom.
func IsCustomType(t *PhoneType) bool {
	if t == nil {
		return false
	}
	return *t == TypeCustom || *t == TypeAssistant
}

// CallLabelKey returns the catalog key for phrasing a voice call to a number
// of the given type. A nil type (the store row had no type) resolves to the
// "other" key; a code outside the enumeration resolves to the "custom" key.
// The asymmetry is deliberate and load-bearing for rendering.
func CallLabelKey(t *PhoneType) LabelKey {
	if t == nil {
		return labelKeys[TypeOther].call
	}
	if ks, ok := labelKeys[*t]; ok {
		return ks.call
	}
	return labelKeys[TypeCustom].call
}

// SMSLabelKey returns the catalog key for phrasing a text message to a number
// of the given type. Nil and out-of-range handling mirrors CallLabelKey.
func SMSLabelKey(t *PhoneType) LabelKey {
	if t == nil {
		return labelKeys[TypeOther].sms
	}
	if ks, ok := labelKeys[*t]; ok {
		return ks.sms
	}
	return labelKeys[TypeCustom].sms
}

// GenericLabelKey returns the catalog key for the bare type name ("Home",
// "Work fax", ...), used when no interaction phrasing is wanted.
func GenericLabelKey(t *PhoneType) LabelKey {
	if t == nil {
		return labelKeys[TypeOther].generic
	}
	if ks, ok := labelKeys[*t]; ok {
		return ks.generic
	}
	return labelKeys[TypeCustom].generic
}

// PhoneTypes lists every defined phone type code.
func PhoneTypes() []PhoneType {
	types := make([]PhoneType, 0, len(labelKeys))
	for t := range labelKeys {
		types = append(types, t)
	}
	return types
}

// KnownLabelKeys lists every catalog key the tables can produce. The set is
// closed; admin overrides are rejected for keys outside it.
func KnownLabelKeys() []LabelKey {
	keys := make([]LabelKey, 0, len(labelKeys)*3)
	for _, ks := range labelKeys {
		keys = append(keys, ks.call, ks.sms, ks.generic)
	}
	return keys
}

// IsKnownLabelKey reports whether key belongs to the catalog key set.
func IsKnownLabelKey(key LabelKey) bool {
	for _, ks := range labelKeys {
		if key == ks.call || key == ks.sms || key == ks.generic {
			return true
		}
	}
	return false
}
