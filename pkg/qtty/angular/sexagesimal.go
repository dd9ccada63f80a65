package angular

// FromDMS builds an angle from degrees, arcminutes and arcseconds. The sign
// is taken from deg; arcminutes and arcseconds always add to the magnitude,
// so FromDMS(-33, 52, 0) is -33.8666...°. No range checks are applied.
//
// A negative angle smaller than one degree cannot be written this way since
// deg is 0; use FromDMSSign.
func FromDMS(deg int, arcmin uint, arcsec float64) Degrees {
	sign := 1
	if deg < 0 {
		sign = -1
		deg = -deg
	}
	return FromDMSSign(sign, uint(deg), arcmin, arcsec)
}

// FromDMSSign builds an angle from an explicit sign and the unsigned
// degree, arcminute and arcsecond components. Any negative sign yields a
// negative angle.
func FromDMSSign(sign int, deg, arcmin uint, arcsec float64) Degrees {
	return NewDegrees(signOf(sign) * sexagesimal(deg, arcmin, arcsec))
}

// FromHMS builds an hour angle from hours, minutes and seconds with the
// sign taken from hours.
func FromHMS(hours int, minutes uint, seconds float64) HourAngles {
	sign := 1
	if hours < 0 {
		sign = -1
		hours = -hours
	}
	return FromHMSSign(sign, uint(hours), minutes, seconds)
}

// FromHMSSign builds an hour angle from an explicit sign and unsigned
// components.
func FromHMSSign(sign int, hours, minutes uint, seconds float64) HourAngles {
	return NewHourAngles(signOf(sign) * sexagesimal(hours, minutes, seconds))
}

func sexagesimal(whole, sixtieths uint, sec float64) float64 {
	return float64(whole) + float64(sixtieths)/60 + sec/3600
}

func signOf(sign int) float64 {
	if sign < 0 {
		return -1
	}
	return 1
}
