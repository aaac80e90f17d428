package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

// PresetGroup is a titled set of quick-select profiles
type PresetGroup struct {
	Key      string               `json:"key" yaml:"key"`
	Title    string               `json:"title" yaml:"title"`
	Profiles []domain.UserProfile `json:"profiles" yaml:"profiles"`
}

var presetGroups = [...]PresetGroup{
	{
		Key:   "leaders",
		Title: "Historical Leaders",
		Profiles: []domain.UserProfile{
			{Name: "Alexander the Great", BirthDate: "356 BC (July 20)", BirthTime: "Unknown", BirthPlace: "Pella, Macedon"},
			{Name: "Cleopatra VII", BirthDate: "69 BC (Jan 1)", BirthTime: "Unknown", BirthPlace: "Alexandria, Egypt"},
			{Name: "Julius Caesar", BirthDate: "100 BC (July 12)", BirthTime: "Unknown", BirthPlace: "Rome, Republic"},
			{Name: "Akhenaten", BirthDate: "1351 BC", BirthTime: "Dawn", BirthPlace: "Thebes, Egypt"},
		},
	},
	{
		Key:   "masters",
		Title: "Esoteric & Occult Masters",
		Profiles: []domain.UserProfile{
			{Name: "Helena Blavatsky", BirthDate: "1831-08-12", BirthTime: "01:42", BirthPlace: "Yekaterinoslav, Ukraine"},
			{Name: "Alice Bailey", BirthDate: "1880-06-16", BirthTime: "07:40", BirthPlace: "Manchester, England"},
			{Name: "Rudolf Steiner", BirthDate: "1861-02-27", BirthTime: "23:15", BirthPlace: "Murakirály, Austria-Hungary"},
			{Name: "Carl Jung", BirthDate: "1875-07-26", BirthTime: "19:29", BirthPlace: "Kesswil, Switzerland"},
		},
	},
	{
		Key:   "theosophists",
		Title: "Theosophists & Mystics",
		Profiles: []domain.UserProfile{
			{Name: "Jiddu Krishnamurti", BirthDate: "1895-05-11", BirthTime: "00:23", BirthPlace: "Madanapalle, India"},
			{Name: "Annie Besant", BirthDate: "1847-10-01", BirthTime: "17:39", BirthPlace: "London, England"},
			{Name: "Charles Webster Leadbeater", BirthDate: "1854-02-16", BirthTime: "Unknown", BirthPlace: "Stockport, England"},
			{Name: "Manly P. Hall", BirthDate: "1901-03-18", BirthTime: "04:00", BirthPlace: "Peterborough, Canada"},
		},
	},
	{
		Key:   "horror",
		Title: "Masters of Horror",
		Profiles: []domain.UserProfile{
			{Name: "H. P. Lovecraft", BirthDate: "1890-08-20", BirthTime: "09:00", BirthPlace: "Providence, Rhode Island"},
			{Name: "Edgar Allan Poe", BirthDate: "1809-01-19", BirthTime: "01:00", BirthPlace: "Boston, Massachusetts"},
			{Name: "Mary Shelley", BirthDate: "1797-08-30", BirthTime: "23:20", BirthPlace: "Somers Town, London"},
			{Name: "Stephen King", BirthDate: "1947-09-21", BirthTime: "01:30", BirthPlace: "Portland, Maine"},
		},
	},
}

var defaultProfile = domain.UserProfile{
	Name:       "Roberto Hernan",
	BirthDate:  "1994-01-21",
	BirthTime:  "10:14",
	BirthPlace: "Caracas, Venezuela",
}

// DefaultProfile is the example shown before any input
func DefaultProfile() domain.UserProfile {
	return defaultProfile
}

// Presets returns the quick-select groups in display order
func Presets() []PresetGroup {
	out := make([]PresetGroup, len(presetGroups))
	for i, g := range presetGroups {
		profiles := make([]domain.UserProfile, len(g.Profiles))
		copy(profiles, g.Profiles)
		out[i] = PresetGroup{Key: g.Key, Title: g.Title, Profiles: profiles}
	}
	return out
}

// Preset returns one preset by group and position
func Preset(group, index int) (domain.UserProfile, bool) {
	if group < 0 || group >= len(presetGroups) {
		return domain.UserProfile{}, false
	}
	profiles := presetGroups[group].Profiles
	if index < 0 || index >= len(profiles) {
		return domain.UserProfile{}, false
	}
	return profiles[index], true
}
