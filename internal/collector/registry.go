package collector

import "codeberg.org/mparkin/smcflux/internal/smc"

// Shortcut keys behind the single-group flags.
const (
	KeyCPUTemp  = smc.Key("TC0P")
	KeyGPUTemp  = smc.Key("TG0P")
	KeySSDTemp  = smc.Key("TH0X")
	KeyWiFiTemp = smc.Key("TW0P")

	keyFanCount = smc.Key("FNum")
)

// TempSensor maps one SMC register to its human-readable sensor label.
type TempSensor struct {
	Key    smc.Key
	Sensor string
}

// Registry lists every known temperature register, in emission order. The
// table is speculative across hardware variants: only a subset exists on
// any given machine, and absent entries are skipped by the read policy.
var Registry = []TempSensor{
	{"TC0P", "CPU"},
	{"TC0p", "CPU"},
	{"TCXr", "CPU-Package"},
	{"TCXR", "CPU-Package"},
	{"TC0E", "CPU-Virtual-1"},
	{"TC0F", "CPU-Virtual-2"},
	{"TC1C", "CPU-Core-1"},
	{"TC2C", "CPU-Core-2"},
	{"TC3C", "CPU-Core-3"},
	{"TC4C", "CPU-Core-4"},
	{"TC5C", "CPU-Core-5"},
	{"TC6C", "CPU-Core-6"},
	{"TC7C", "CPU-Core-7"},
	{"TC8C", "CPU-Core-8"},
	{"TC0c", "CPU-Core-1"},
	{"TC1c", "CPU-Core-2"},
	{"TC2c", "CPU-Core-3"},
	{"TC3c", "CPU-Core-4"},

	{"TG0P", "GPU"},
	{"TG1P", "GPU-VRAM"},
	{"TG0D", "GPU-Die"},
	{"TG0p", "GPU"},

	{"TH0P", "HDD"},
	{"TH0V", "HDD-Drive"},

	{"TH0X", "SSD"},
	{"TH0F", "SSD-Filtered"},
	{"TH0a", "SSD-Drive-0-A"},
	{"TH0b", "SSD-Drive-0-B"},
	{"TH1a", "SSD-Drive-1-A"},
	{"TH1b", "SSD-Drive-1-B"},
	{"TH1c", "SSD-Drive-1-C"},
	{"TH1A", "SSD-Drive-1-A"},
	{"TH1B", "SSD-Drive-1-B"},

	{"TL0P", "LCD"},
	{"TL0V", "LCD-Front-Right"},
	{"TL0p", "LCD-Front"},
	{"TL1V", "LCD-Front-Center"},

	{"Ts0S", "Memory"},
	{"TM0P", "Memory-Bank-1"},
	{"TM1P", "Memory-Bank-2"},
	{"TM0p", "Memory-DIMM-1"},
	{"TM1p", "Memory-DIMM-2"},
	{"TM2p", "Memory-DIMM-3"},
	{"TM3p", "Memory-DIMM-4"},
	{"TM41", "Memory-Virtual"},

	{"Tm0P", "Mainboard"},
	{"Tm1P", "Mainboard-Bottom"},

	{"TW0P", "WiFi"},

	{"TB1T", "Battery-1"},
	{"TB2T", "Battery-2"},

	{"TA0V", "Ambient"},
	{"Ts0P", "Palm-Rest-1"},
	{"Ts1P", "Palm-Rest-2"},
	{"Ts1S", "Skin-Top"},
	{"TA0P", "Airflow-1"},
	{"TA1P", "Airflow-2"},
	{"Th1H", "Heatpipe-Left"},
	{"Th2H", "Heatpipe-Right"},

	{"TS0V", "Skin"},
	{"Tb0p", "Backlight"},
	{"Tb0P", "BLC"},

	{"TPCD", "PCH-Die"},
	{"TCGC", "PECI-GPU"},
	{"TCXC", "PECI-CPU"},
	{"TCMX", "PECI-MAX"},
	{"TCSA", "PECI-SA"},

	{"TCGc", "PECI-GPU"},
	{"TCSc", "PECI-SA"},
	{"TCXc", "PECI-CPU"},

	{"Te0T", "TBT-Diode"},
	{"Tm0p", "EMC-Diode"},
	{"Tp0C", "Power-Supply"},
	{"Tp2h", "Power-Supply-Heatsink"},
}
