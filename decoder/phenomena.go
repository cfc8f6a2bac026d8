package decoder

import "slices"

type WeatherQualifier int

const (
	QualifierNone WeatherQualifier = iota
	QualifierRecent
	QualifierVicinity
	QualifierLight
	QualifierHeavy
)

type WeatherDescriptor int

const (
	DescriptorNone WeatherDescriptor = iota
	DescriptorShallow
	DescriptorPartial
	DescriptorPatches
	DescriptorLowDrifting
	DescriptorBlowing
	DescriptorShowers
	DescriptorThunderstorm
	DescriptorFreezing
)

type Weather int

const (
	WeatherNotReported Weather = iota
	WeatherDrizzle
	WeatherRain
	WeatherSnow
	WeatherSnowGrains
	WeatherIceCrystals
	WeatherIcePellets
	WeatherHail
	WeatherSmallHail
	WeatherUnknownPrecipitation
	WeatherMist
	WeatherFog
	WeatherSmoke
	WeatherVolcanicAsh
	WeatherDust
	WeatherSand
	WeatherHaze
	WeatherSpray
	WeatherDustWhirls
	WeatherSqualls
	WeatherFunnelCloud
	WeatherSandstorm
	WeatherDuststorm
)

// WeatherEvent marks the beginning or end of a phenomenon in a recency
// remark such as "RAB1200".
type WeatherEvent int

const (
	EventNone WeatherEvent = iota
	EventBeginning
	EventEnding
)

const maxWeatherCodes = 4

var descriptorCodes = map[string]WeatherDescriptor{
	"MI": DescriptorShallow,
	"PR": DescriptorPartial,
	"BC": DescriptorPatches,
	"DR": DescriptorLowDrifting,
	"BL": DescriptorBlowing,
	"SH": DescriptorShowers,
	"TS": DescriptorThunderstorm,
	"FZ": DescriptorFreezing,
}

var weatherCodes = map[string]Weather{
	"//": WeatherNotReported,
	"DZ": WeatherDrizzle,
	"RA": WeatherRain,
	"SN": WeatherSnow,
	"SG": WeatherSnowGrains,
	"IC": WeatherIceCrystals,
	"PL": WeatherIcePellets,
	"GR": WeatherHail,
	"GS": WeatherSmallHail,
	"UP": WeatherUnknownPrecipitation,
	"BR": WeatherMist,
	"FG": WeatherFog,
	"FU": WeatherSmoke,
	"VA": WeatherVolcanicAsh,
	"DU": WeatherDust,
	"SA": WeatherSand,
	"HZ": WeatherHaze,
	"PY": WeatherSpray,
	"PO": WeatherDustWhirls,
	"SQ": WeatherSqualls,
	"FC": WeatherFunnelCloud,
	"SS": WeatherSandstorm,
	"DS": WeatherDuststorm,
}

// WeatherPhenomena is one qualifier/descriptor/weather combination, e.g.
// "-SHRA", "VCTS", "BCFG", "RERA". In a recency remark it also carries an
// event and its time.
type WeatherPhenomena struct {
	qualifier  WeatherQualifier
	descriptor WeatherDescriptor
	weather    []Weather
	event      WeatherEvent
	time       *MetafTime
}

// WeatherPhenomenaFromString parses a phenomena string. The "RE" qualifier
// is accepted only when enableRecent is set.
func WeatherPhenomenaFromString(s string, enableRecent bool) *WeatherPhenomena {
	if s == "" {
		return nil
	}
	wp := &WeatherPhenomena{}
	switch {
	case s[0] == '+':
		wp.qualifier, s = QualifierHeavy, s[1:]
	case s[0] == '-':
		wp.qualifier, s = QualifierLight, s[1:]
	case len(s) > 2 && s[:2] == "VC":
		wp.qualifier, s = QualifierVicinity, s[2:]
	case len(s) > 2 && s[:2] == "RE":
		if !enableRecent {
			return nil
		}
		wp.qualifier, s = QualifierRecent, s[2:]
	}
	if len(s) >= 2 {
		if d, ok := descriptorCodes[s[:2]]; ok {
			wp.descriptor, s = d, s[2:]
		}
	}
	if len(s)%2 != 0 {
		return nil
	}
	for ; s != ""; s = s[2:] {
		w, ok := weatherCodes[s[:2]]
		if !ok || len(wp.weather) == maxWeatherCodes {
			return nil
		}
		wp.weather = append(wp.weather, w)
	}
	if wp.descriptor == DescriptorNone && len(wp.weather) == 0 {
		return nil
	}
	return wp
}

func (wp WeatherPhenomena) Qualifier() WeatherQualifier { return wp.qualifier }

func (wp WeatherPhenomena) Descriptor() WeatherDescriptor { return wp.descriptor }

func (wp WeatherPhenomena) Weather() []Weather { return slices.Clone(wp.weather) }

func (wp WeatherPhenomena) Event() WeatherEvent { return wp.event }

// Time is the event time of a recency remark, nil otherwise.
func (wp WeatherPhenomena) Time() *MetafTime { return wp.time }

func isPrecipitation(w Weather) bool {
	switch w {
	case WeatherDrizzle, WeatherRain, WeatherSnow, WeatherSnowGrains, WeatherIceCrystals,
		WeatherIcePellets, WeatherHail, WeatherSmallHail, WeatherUnknownPrecipitation:
		return true
	}
	return false
}

func (wp WeatherPhenomena) allWeatherIn(allowed ...Weather) bool {
	for _, w := range wp.weather {
		if !slices.Contains(allowed, w) {
			return false
		}
	}
	return true
}

func (wp WeatherPhenomena) singleWeatherIn(allowed ...Weather) bool {
	return len(wp.weather) == 1 && slices.Contains(allowed, wp.weather[0])
}

// IsValid applies the combination rules for qualifiers, descriptors and
// weather codes.
func (wp WeatherPhenomena) IsValid() bool {
	if wp.time != nil && !wp.time.IsValid() {
		return false
	}
	for i, w := range wp.weather {
		if slices.Contains(wp.weather[i+1:], w) {
			return false
		}
	}
	if slices.Contains(wp.weather, WeatherNotReported) {
		return len(wp.weather) == 1 && wp.descriptor == DescriptorNone &&
			(wp.qualifier == QualifierNone || wp.qualifier == QualifierRecent)
	}
	if !wp.qualifierIsValid() {
		return false
	}
	switch wp.descriptor {
	case DescriptorShallow, DescriptorPartial, DescriptorPatches:
		return wp.singleWeatherIn(WeatherFog)
	case DescriptorLowDrifting, DescriptorBlowing:
		return wp.singleWeatherIn(WeatherDust, WeatherSand, WeatherSnow)
	case DescriptorShowers:
		if len(wp.weather) == 0 {
			return wp.qualifier == QualifierVicinity
		}
		return wp.allWeatherIn(WeatherRain, WeatherSnow, WeatherIcePellets, WeatherHail,
			WeatherSmallHail, WeatherUnknownPrecipitation)
	case DescriptorThunderstorm:
		return wp.allWeatherIn(WeatherRain, WeatherSnow, WeatherIcePellets, WeatherHail,
			WeatherSmallHail, WeatherUnknownPrecipitation, WeatherDrizzle)
	case DescriptorFreezing:
		return len(wp.weather) > 0 &&
			wp.allWeatherIn(WeatherDrizzle, WeatherRain, WeatherUnknownPrecipitation, WeatherFog)
	}
	if len(wp.weather) > 1 {
		return wp.allWeatherIn(WeatherDrizzle, WeatherRain, WeatherSnow, WeatherSnowGrains,
			WeatherIcePellets, WeatherHail, WeatherSmallHail, WeatherUnknownPrecipitation)
	}
	return true
}

func (wp WeatherPhenomena) qualifierIsValid() bool {
	switch wp.qualifier {
	case QualifierLight, QualifierHeavy:
		if wp.qualifier == QualifierHeavy && wp.singleWeatherIn(WeatherFunnelCloud) {
			return true
		}
		for _, w := range wp.weather {
			if isPrecipitation(w) || w == WeatherSandstorm || w == WeatherDuststorm {
				return true
			}
		}
		return false
	case QualifierVicinity:
		switch wp.descriptor {
		case DescriptorShowers, DescriptorThunderstorm:
			return len(wp.weather) == 0
		case DescriptorBlowing:
			return true
		case DescriptorNone:
			return wp.singleWeatherIn(WeatherFog, WeatherDustWhirls, WeatherFunnelCloud,
				WeatherDuststorm, WeatherSandstorm, WeatherVolcanicAsh)
		}
		return false
	}
	return true
}
