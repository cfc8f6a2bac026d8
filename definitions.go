package main

import "github.com/rmitchellscott/wxparse/decoder"

var qualifierDescriptions = map[decoder.WeatherQualifier]string{
	decoder.QualifierRecent:   "recent",
	decoder.QualifierVicinity: "in the vicinity",
	decoder.QualifierLight:    "light",
	decoder.QualifierHeavy:    "heavy",
}

var descriptorDescriptions = map[decoder.WeatherDescriptor]string{
	decoder.DescriptorShallow:      "shallow",
	decoder.DescriptorPartial:      "partial",
	decoder.DescriptorPatches:      "patches",
	decoder.DescriptorLowDrifting:  "low drifting",
	decoder.DescriptorBlowing:      "blowing",
	decoder.DescriptorShowers:      "showers",
	decoder.DescriptorThunderstorm: "thunderstorm",
	decoder.DescriptorFreezing:     "freezing",
}

var weatherDescriptions = map[decoder.Weather]string{
	decoder.WeatherNotReported:          "not reported",
	decoder.WeatherDrizzle:              "drizzle",
	decoder.WeatherRain:                 "rain",
	decoder.WeatherSnow:                 "snow",
	decoder.WeatherSnowGrains:           "snow grains",
	decoder.WeatherIceCrystals:          "ice crystals",
	decoder.WeatherIcePellets:           "ice pellets",
	decoder.WeatherHail:                 "hail",
	decoder.WeatherSmallHail:            "small hail",
	decoder.WeatherUnknownPrecipitation: "unknown precipitation",
	decoder.WeatherMist:                 "mist",
	decoder.WeatherFog:                  "fog",
	decoder.WeatherSmoke:                "smoke",
	decoder.WeatherVolcanicAsh:          "volcanic ash",
	decoder.WeatherDust:                 "widespread dust",
	decoder.WeatherSand:                 "sand",
	decoder.WeatherHaze:                 "haze",
	decoder.WeatherSpray:                "spray",
	decoder.WeatherDustWhirls:           "dust whirls",
	decoder.WeatherSqualls:              "squalls",
	decoder.WeatherFunnelCloud:          "funnel cloud",
	decoder.WeatherSandstorm:            "sandstorm",
	decoder.WeatherDuststorm:            "duststorm",
}

// Group types that carry no phenomena
var weatherTypeDescriptions = map[decoder.WeatherType]string{
	decoder.WeatherNSW:               "no significant weather",
	decoder.WeatherPWINO:             "present weather identifier not operational",
	decoder.WeatherTSNO:              "lightning detector not operational",
	decoder.WeatherMisg:              "weather data missing",
	decoder.WeatherTSLTNGTempoUnavbl: "thunderstorm and lightning data temporarily unavailable",
}

// Common cloud coverage mapping
var cloudCoverage = map[decoder.CloudAmount]string{
	decoder.AmountNotReported: "clouds of unreported amount",
	decoder.AmountFew:         "few clouds",
	decoder.AmountScattered:   "scattered clouds",
	decoder.AmountBroken:      "broken clouds",
	decoder.AmountOvercast:    "overcast",
}

// Common cloud type mapping
var cloudTypes = map[decoder.ConvectiveType]string{
	decoder.ConvectiveNotReported: "type not reported",
	decoder.ConvectiveTCU:         "towering cumulus",
	decoder.ConvectiveCB:          "cumulonimbus",
}

var cloudLiterals = map[decoder.CloudType]string{
	decoder.CloudNSC: "no significant clouds",
	decoder.CloudNCD: "no clouds detected",
	decoder.CloudSKC: "sky clear",
	decoder.CloudCLR: "clear below 12,000 feet",
}

// Special aerodrome conditions
var specialConditions = map[decoder.FixedType]string{
	decoder.FixedAMD:     "amended report",
	decoder.FixedNIL:     "missing report",
	decoder.FixedCNL:     "cancelled report",
	decoder.FixedCOR:     "corrected report",
	decoder.FixedAUTO:    "automated observation",
	decoder.FixedRSNOCLO: "aerodrome closed due to snow",
	decoder.FixedCAVOK:   "ceiling and visibility OK",
	decoder.FixedNSW:     "no significant weather",
	decoder.FixedRMK:     "remarks follow",
	decoder.FixedAO1:     "automated station without precipitation discriminator",
	decoder.FixedAO1A:    "automated station without precipitation discriminator, augmented",
	decoder.FixedAO2:     "automated station with precipitation discriminator",
	decoder.FixedAO2A:    "automated station with precipitation discriminator, augmented",
	decoder.FixedNOSPECI: "no SPECI reports issued",
	decoder.FixedPNO:     "precipitation gauge not operational",
	decoder.FixedFZRANO:  "freezing rain sensor not operational",
	decoder.FixedFROIN:   "frost on the indicator",

	decoder.FixedMaintenanceIndicator: "station needs maintenance",
}

var pressureLabels = map[decoder.PressureType]string{
	decoder.PressureObservedQNH:       "altimeter",
	decoder.PressureForecastLowestQNH: "lowest forecast altimeter",
	decoder.PressureObservedQFE:       "station pressure",
	decoder.PressureObservedSLP:       "sea level pressure",
	decoder.PressureSLPNO:             "sea level pressure not available",
	decoder.PressureMisg:              "pressure data missing",
	decoder.PressureRisingRapidly:     "pressure rising rapidly",
	decoder.PressureFallingRapidly:    "pressure falling rapidly",
}

var distanceUnits = map[decoder.DistanceUnit]string{
	decoder.DistanceMeters:       "meters",
	decoder.DistanceStatuteMiles: "statute miles",
	decoder.DistanceFeet:         "feet",
}

var speedUnits = map[decoder.SpeedUnit]string{
	decoder.SpeedKnots:             "knots",
	decoder.SpeedMetersPerSecond:   "meters per second",
	decoder.SpeedKilometersPerHour: "km/h",
	decoder.SpeedMilesPerHour:      "mph",
}

var rvrTrends = map[decoder.RvrTrend]string{
	decoder.TrendUpward:   "increasing",
	decoder.TrendDownward: "decreasing",
	decoder.TrendNeutral:  "no change",
}

var terrainDescriptions = map[decoder.TerrainDescription]string{
	decoder.MountainsObscured:              "mountains obscured",
	decoder.MountainsFree:                  "mountains free of clouds",
	decoder.MountainsScatteredClouds:       "scattered clouds on mountains",
	decoder.MountainsCloudsOnPeaks:         "clouds on mountain peaks",
	decoder.MountainsSlopesCovered:         "mountain slopes covered",
	decoder.MountainsCumulonimbus:          "cumulonimbus behind mountains",
	decoder.MountainsGenerallyCovered:      "mountains generally covered",
	decoder.MountainsCovered:               "mountains covered",
	decoder.MountainsInvisible:             "mountains invisible",
	decoder.ValleysClear:                   "valleys clear",
	decoder.ValleysHaze:                    "haze in valleys",
	decoder.ValleysHazeClearAbove:          "haze in valleys, clear above",
	decoder.ValleysFog:                     "fog in valleys",
	decoder.ValleysScatteredFog:            "scattered fog in valleys",
	decoder.ValleysScatteredClouds:         "scattered clouds in valleys",
	decoder.ValleysScatteredCloudsFogBelow: "scattered clouds in valleys, fog below",
	decoder.ValleysSeaOfClouds:             "sea of clouds in valleys",
	decoder.ValleysInvisible:               "valleys invisible",
}
