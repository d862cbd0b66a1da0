package dashboard

import "gitlab.com/tinyland/lab/sysdash/simulator"

// Field names one display target.
type Field string

// CPU panel.
const (
	CPUGauge  Field = "cpu-gauge"
	CPUValue  Field = "cpu-value"
	CPUCores  Field = "cpu-cores"
	CPUTemp   Field = "cpu-temp"
	CPUSpeed  Field = "cpu-speed"
	CPUUpdate Field = "cpu-update"
)

// RAM panel.
const (
	RAMGauge     Field = "ram-gauge"
	RAMValue     Field = "ram-value"
	RAMUsed      Field = "ram-used"
	RAMTotal     Field = "ram-total"
	RAMAvailable Field = "ram-available"
	RAMUpdate    Field = "ram-update"
)

// Disk panel.
const (
	DiskBar        Field = "disk-bar"
	DiskPercentage Field = "disk-percentage"
	DiskUsed       Field = "disk-used"
	DiskFree       Field = "disk-free"
	DiskTotal      Field = "disk-total"
)

// Network panel.
const (
	UploadSpeed   Field = "upload-speed"
	DownloadSpeed Field = "download-speed"
	TotalUpload   Field = "total-upload"
	TotalDownload Field = "total-download"
)

// System panel and footer.
const (
	OSName     Field = "os-name"
	ClientName Field = "client-name"
	ScreenRes  Field = "screen-res"
	Identity   Field = "identity"
	Timezone   Field = "timezone"
	Uptime     Field = "uptime"
)

// RequiredFields lists every target a Display must provide.
var RequiredFields = []Field{
	CPUGauge, CPUValue, CPUCores, CPUTemp, CPUSpeed, CPUUpdate,
	RAMGauge, RAMValue, RAMUsed, RAMTotal, RAMAvailable, RAMUpdate,
	DiskBar, DiskPercentage, DiskUsed, DiskFree, DiskTotal,
	UploadSpeed, DownloadSpeed, TotalUpload, TotalDownload,
	OSName, ClientName, ScreenRes, Identity, Timezone,
	Uptime,
}

// ChartedChannels are the channels that keep a history and a chart surface.
// Disk and network are shown as instantaneous values only.
var ChartedChannels = []simulator.Channel{simulator.CPU, simulator.RAM}

// Display is the rendering collaborator the dashboard pushes values into.
type Display interface {
	// Has reports whether the target exists.
	Has(f Field) bool
	// SetText replaces the text of a target.
	SetText(f Field, text string)
	// SetLevel sets a gauge or bar target to a percentage in [0,100].
	SetLevel(f Field, pct float64)
	// SetProcesses replaces the process list.
	SetProcesses(rows []simulator.ProcessRow)
}
