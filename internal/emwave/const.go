package emwave

// Defaults used when neither config file nor flags set a value.
const (
	Duration      = 8.0
	FPS           = 30
	ExtentStart   = 0.0
	ExtentStop    = 4.0
	Wavelength    = 1.0
	Amplitude     = 1.0
	Points        = 200
	MediumName    = "vacuum"
	ListenAddr    = "127.0.0.1:8080"
	ImageWidth    = 720
	ImageHeight   = 440
	ViewElevation = 22.5 // degrees
	ViewAzimuth   = -60  // degrees
	LimitPadding  = 0.15 // fraction of the electric amplitude added around the axes
	DashLen       = 6    // pixels per dash of magnetic traces
)
