package recipe

import (
	"github.com/go-playground/validator/v10"
)

// Vibe is the primary flavor profile driving recipe tone.
type Vibe string

const (
	VibeSavory          Vibe = "savory"
	VibeSweet           Vibe = "sweet"
	VibeSpicy           Vibe = "spicy"
	VibeSaltySweet      Vibe = "salty-sweet"
	VibeSweetSpicy      Vibe = "sweet-spicy"
	VibeChocolatey      Vibe = "chocolatey"
	VibeZesty           Vibe = "zesty"
	VibeNutty           Vibe = "nutty"
	VibeSmoky           Vibe = "smoky"
	VibeUmami           Vibe = "umami"
	VibeFruity          Vibe = "fruity"
	VibeHolidaySpice    Vibe = "holiday-spice"
	VibeHerbal          Vibe = "herbal"
	VibeCitrus          Vibe = "citrus"
	VibeCaramel         Vibe = "caramel"
	VibeMaple           Vibe = "maple"
	VibeCinnamon        Vibe = "cinnamon"
	VibeVanilla         Vibe = "vanilla"
	VibeCoffee          Vibe = "coffee"
	VibeEarthy          Vibe = "earthy"
	VibeButtery         Vibe = "buttery"
	VibeCheesy          Vibe = "cheesy"
	VibeGarlic          Vibe = "garlic"
	VibeHerbsDeProvence Vibe = "herbs-de-provence"
)

// MixPreferences is the user's generation request. All slice fields are always
// present (possibly empty); SpiceLevel is always in [0,10].
type MixPreferences struct {
	Vibe            Vibe     `json:"vibe" validate:"required,oneof=savory sweet spicy salty-sweet sweet-spicy chocolatey zesty nutty smoky umami fruity holiday-spice herbal citrus caramel maple cinnamon vanilla coffee earthy buttery cheesy garlic herbs-de-provence"`
	BaseIngredients []string `json:"baseIngredients"`
	MixIns          []string `json:"mixIns"`
	Dietary         []string `json:"dietary"`
	SpiceLevel      int      `json:"spiceLevel" validate:"min=0,max=10"`
	ChristmasSpirit bool     `json:"christmasSpirit"`
	THCInfused      bool     `json:"thcInfused"`
}

var validate = validator.New()

// DefaultPreferences is the form's starting state: savory, no ingredient
// picks, full Christmas spirit.
func DefaultPreferences() MixPreferences {
	return MixPreferences{
		Vibe:            VibeSavory,
		BaseIngredients: []string{},
		MixIns:          []string{},
		Dietary:         []string{},
		SpiceLevel:      0,
		ChristmasSpirit: true,
		THCInfused:      false,
	}
}

// Validate checks field-level invariants (vibe membership, spice range,
// slice presence). The shape gate used at storage boundaries is
// IsValidPreferences; this is the stricter semantic check applied before a
// generation request is issued.
func (p *MixPreferences) Validate() error {
	p.Normalize()
	return validate.Struct(p)
}

// Normalize ensures the invariant that slice fields are never nil.
func (p *MixPreferences) Normalize() {
	if p.BaseIngredients == nil {
		p.BaseIngredients = []string{}
	}
	if p.MixIns == nil {
		p.MixIns = []string{}
	}
	if p.Dietary == nil {
		p.Dietary = []string{}
	}
}

// Clone returns a deep copy of the preferences.
func (p MixPreferences) Clone() MixPreferences {
	out := p
	out.BaseIngredients = append([]string(nil), p.BaseIngredients...)
	out.MixIns = append([]string(nil), p.MixIns...)
	out.Dietary = append([]string(nil), p.Dietary...)
	return out
}
