package event

// Department groups the festival events run by one department or society.
type Department struct {
	Name   string
	Events []string
}

// Catalogue is the fixed department and event-title listing for Technova'26.
// The admin form only accepts titles from the department they belong to.
var Catalogue = []Department{
	{Name: "CSE Department", Events: []string{"Web Master", "Techno Quiz", "Think Future"}},
	{Name: "SEE (EED)", Events: []string{"Tech Charades", "Tech Bid", "Machine Mantra"}},
	{Name: "INTEC (ECE)", Events: []string{"Circuit Design and Debugging Competition", "Roast Verse", "Prompt2Poster"}},
	{Name: "SOMEC (MED)", Events: []string{"Design Minds", "Aero Modeling (Sky Glider)"}},
	{Name: "MANTHAN (CHE)", Events: []string{"Knowledge Knockout Quiz (Mind Clash)", "Get Recognised for Your Personality (GRYP)", "Chem Spark"}},
	{Name: "MEDITRONICA (BME)", Events: []string{"Poster Making Competition", "Biomedical Tech Quiz", "Biomedical Debate Competition"}},
	{Name: "ENGENISIS (BT)", Events: []string{"Brainy Brawl", "Brain Quest Arena"}},
	{Name: "NIRMAN (CIVIL)", Events: []string{"Chakravyuh", "Bridge it Right", "Think & Sprint"}},
	{Name: "RAMAN (Physics)", Events: []string{"Physi-Hunt", "The Escape Room", "Inno Vision"}},
	{Name: "RASAYANAM (Chemistry)", Events: []string{"Science Quiz", "Magic of Chemistry", "The Alchemist's Cipher"}},
	{Name: "MATHEMAGICIANS (Mathematics)", Events: []string{"Poster Making", "Debate", "Quiz"}},
	{Name: "YOUNG THESPIANS (DMS)", Events: []string{"Team Titans", "Brand Storm", "Business Hunt"}},
	{Name: "CEEES", Events: []string{"Idea-Thon", "Agri-Technictionary", "Seed Sorting Race"}},
	{Name: "LISOCI Literary Society", Events: []string{"Student of the Year", "BPD (British Parliamentary Debate)"}},
	{Name: "SUNSHINE", Events: []string{"Gaming Event", "Treasure Hunt"}},
	{Name: "SAVERA", Events: []string{"Innovation Odyssey Challenge", "Tech Titans Trivia"}},
	{Name: "E-Cell", Events: []string{"Mix-Matched", "The Corporate Clash"}},
	{Name: "THINKBOTS", Events: []string{"Walking-Dead", "Dungeon-Drive"}},
	{Name: "DCRUST ODC", Events: []string{"CodeBug", "SQL Master"}},
	{Name: "Centralized Events", Events: []string{"Project Expo", "Poster Presentation", "Hobby Expo", "Robotics"}},
}

// DepartmentNames returns the catalogue department names in display order.
func DepartmentNames() []string {
	names := make([]string, 0, len(Catalogue))
	for _, d := range Catalogue {
		names = append(names, d.Name)
	}
	return names
}

// KnownDepartment reports whether the department exists in the catalogue.
func KnownDepartment(name string) bool {
	for _, d := range Catalogue {
		if d.Name == name {
			return true
		}
	}
	return false
}

// TitlesFor returns the event titles scoped to one department. Unknown
// departments yield an empty list, which the admin form renders as a disabled
// selector.
func TitlesFor(department string) []string {
	for _, d := range Catalogue {
		if d.Name == department {
			return d.Events
		}
	}
	return nil
}

// ValidTitle reports whether the title belongs to the department. Changing the
// department in the admin form resets the title; this is the server-side
// counterpart of that cascade.
func ValidTitle(department, title string) bool {
	for _, t := range TitlesFor(department) {
		if t == title {
			return true
		}
	}
	return false
}
