package fixture

import (
	"fmt"
	"math/rand"
	"strings"

	"fixmate/internal/shared/logger"
)

// GeneratorOptions controls the size and determinism of a synthetic fixture.
type GeneratorOptions struct {
	BrandCount         int
	AppliancesPerBrand int
	IssuesPerAppliance int
	Seed               int64
}

// DefaultGeneratorOptions mirrors the original dataset dimensions.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		BrandCount:         80,
		AppliancesPerBrand: 8,
		IssuesPerAppliance: 25,
		Seed:               42,
	}
}

var brandPool = []string{
	"LG", "Samsung", "Bosch", "Whirlpool", "IFB", "Panasonic", "Sony", "Hitachi",
	"Kent", "Voltas", "Haier", "BlueStar", "Godrej", "Midea", "Sharp", "Siemens",
	"Videocon", "Bajaj", "Morphy Richards", "Philips", "Havells", "V-Guard",
	"Carrier", "Electrolux", "GE", "Kenmore", "Ariston", "Gree", "Sanyo", "Crompton",
}

var appliancePool = []string{
	"Washing Machine", "Front-load Washer", "Top-load Washer", "Refrigerator",
	"Microwave Oven", "Air Conditioner", "Window AC", "Split AC",
	"TV", "Smart TV", "Geyser", "Water Heater", "Induction Cooktop",
	"Chimney", "Dishwasher", "Vacuum Cleaner", "Mixer Grinder", "Juicer",
	"Water Purifier", "Coffee Maker",
}

type issueTemplate struct {
	title   string
	details []string
}

var issueTemplates = []issueTemplate{
	{"Not powering on", []string{
		"Check the power cord, ensure the socket is working, and test with a different outlet.",
		"Check internal fuses and the mains input on the PCB; replace defective fuses.",
	}},
	{"Doesn't start / won't spin", []string{
		"Check door/lid lock and interlock switches; ensure the drum is empty and balanced.",
		"Inspect motor capacitor/connections; test motor continuity and replace if faulty.",
	}},
	{"Not cooling / poor cooling", []string{
		"Check refrigerant levels, condenser coil for dust, and clean filters.",
		"Verify compressor operation; inspect start relay and overload protector.",
	}},
	{"Leaking water", []string{
		"Inspect inlet/outlet hoses and clamps, and check the drain pump for blockages.",
		"Check door gasket seals for damage and reseal or replace if necessary.",
	}},
	{"Strange noise / vibration", []string{
		"Level the appliance and tighten mounting bolts; remove foreign objects.",
		"Inspect bearings, belts, and suspension springs for wear and replace as needed.",
	}},
	{"Display or control panel error", []string{
		"Power cycle the unit, check for water ingress, and reseat ribbon cables.",
		"If error persists, check error code in manual and replace faulty control board.",
	}},
	{"Heating not working", []string{
		"Check heating element continuity and thermostat; replace faulty element.",
		"Inspect thermal fuse and associated wiring; ensure proper supply to the element.",
	}},
	{"Door not closing / latch broken", []string{
		"Clean latch and hinges, check for alignment, replace latch if broken.",
		"Realign door hinge screws and check strike plate for damage.",
	}},
}

var safetyNotes = []string{
	"Always disconnect power supply before performing repairs.",
	"If the appliance is under warranty, contact authorized service to avoid voiding warranty.",
	"Use insulated tools and follow safety precautions when working with electrical parts.",
}

var titleExtras = []string{"(intermittent)", "(after long use)", "(during start)", "(sudden)"}

var estimatedTimes = []string{"10-30 mins", "30-60 mins", "1-2 hours"}

var difficulties = []string{"Easy", "Moderate", "Hard"}

var possibleParts = []string{
	"gasket", "motor", "pump", "heater element", "control board", "relay", "capacitator", "valve",
}

// Generator produces a synthetic catalog fixture. Output is deterministic
// for a fixed seed.
type Generator struct {
	opts   GeneratorOptions
	rng    *rand.Rand
	logger logger.Interface
}

// NewGenerator creates a new fixture generator
func NewGenerator(opts GeneratorOptions) *Generator {
	if opts.BrandCount < 1 {
		opts.BrandCount = 1
	}
	if opts.AppliancesPerBrand < 1 {
		opts.AppliancesPerBrand = 1
	}
	if opts.IssuesPerAppliance < 1 {
		opts.IssuesPerAppliance = 1
	}
	return &Generator{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger.NewLogger().With("component", "fixture.generator"),
	}
}

// Generate builds the full fixture.
func (g *Generator) Generate() Fixture {
	fixture := make(Fixture, g.opts.BrandCount)

	for _, brand := range g.brandNames() {
		appliances := make(map[string]ApplianceEntry, g.opts.AppliancesPerBrand)
		for _, appliance := range g.sampleAppliances() {
			appliances[appliance] = ApplianceEntry{
				BrandPage:    brandPageURL(brand, appliance),
				CommonIssues: g.generateIssues(brand, appliance),
			}
		}
		fixture[brand] = appliances
	}

	g.logger.Infow("fixture generated",
		"brands", len(fixture),
		"issues", fixture.IssueCount(),
		"seed", g.opts.Seed)

	return fixture
}

// brandNames cycles the brand pool until the requested count, occasionally
// adding a numeric suffix so duplicates stay distinct.
func (g *Generator) brandNames() []string {
	brands := make([]string, 0, g.opts.BrandCount)
	seen := make(map[string]bool, g.opts.BrandCount)

	for len(brands) < g.opts.BrandCount {
		for _, base := range brandPool {
			if len(brands) >= g.opts.BrandCount {
				break
			}
			name := base
			if g.rng.Float64() < 0.15 {
				name = fmt.Sprintf("%s %d", base, g.rng.Intn(99)+1)
			}
			for seen[name] {
				name = fmt.Sprintf("%s %d", base, g.rng.Intn(99)+1)
			}
			seen[name] = true
			brands = append(brands, name)
		}
	}
	return brands
}

// sampleAppliances picks appliances without replacement.
func (g *Generator) sampleAppliances() []string {
	k := g.opts.AppliancesPerBrand
	if k > len(appliancePool) {
		k = len(appliancePool)
	}
	perm := g.rng.Perm(len(appliancePool))
	sample := make([]string, k)
	for i := 0; i < k; i++ {
		sample[i] = appliancePool[perm[i]]
	}
	return sample
}

func (g *Generator) generateIssues(brand, appliance string) map[string]string {
	issues := make(map[string]string, g.opts.IssuesPerAppliance)

	for idx := 0; idx < g.opts.IssuesPerAppliance; idx++ {
		tpl := issueTemplates[g.rng.Intn(len(issueTemplates))]

		title := tpl.title
		if idx%7 == 0 {
			title = fmt.Sprintf("%s %s", title, titleExtras[g.rng.Intn(len(titleExtras))])
		}

		detail := tpl.details[g.rng.Intn(len(tpl.details))]
		if g.rng.Float64() < 0.3 {
			detail += " Also inspect wiring harness and connectors."
		}

		// Duplicate titles get a numeric suffix so every key stays unique.
		key := title
		for counter := 2; ; counter++ {
			if _, exists := issues[key]; !exists {
				break
			}
			key = fmt.Sprintf("%s (%d)", title, counter)
		}

		issues[key] = g.makeSolution(brand, appliance, title, detail)
	}
	return issues
}

func (g *Generator) makeSolution(brand, appliance, title, detail string) string {
	estTime := estimatedTimes[g.rng.Intn(len(estimatedTimes))]
	difficulty := difficulties[g.rng.Intn(len(difficulties))]
	parts := g.sampleParts(2)
	safety := safetyNotes[g.rng.Intn(len(safetyNotes))]

	var b strings.Builder
	fmt.Fprintf(&b, "Issue: %s\n", title)
	fmt.Fprintf(&b, "Appliance: %s\n", appliance)
	fmt.Fprintf(&b, "Brand: %s\n\n", brand)
	b.WriteString("Recommended steps:\n")
	fmt.Fprintf(&b, "1) %s\n", detail)
	b.WriteString("2) If problem persists, isolate the component and test using a multimeter.\n")
	b.WriteString("3) If you are not comfortable with electrical repairs, call a certified technician.\n\n")
	fmt.Fprintf(&b, "Estimated time: %s\n", estTime)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Possible parts: %s\n\n", strings.Join(parts, ", "))
	fmt.Fprintf(&b, "Safety: %s", safety)
	return b.String()
}

func (g *Generator) sampleParts(k int) []string {
	perm := g.rng.Perm(len(possibleParts))
	sample := make([]string, k)
	for i := 0; i < k; i++ {
		sample[i] = possibleParts[perm[i]]
	}
	return sample
}

func brandPageURL(brand, appliance string) string {
	host := strings.ToLower(strings.ReplaceAll(brand, " ", ""))
	path := strings.ToLower(strings.ReplaceAll(appliance, " ", "-"))
	return fmt.Sprintf("https://%s.example.com/%s", host, path)
}
