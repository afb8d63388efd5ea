// Package collector drives the SMC transport and value decoder across the
// known sensor keys and prints each populated sensor as one line-protocol
// record.
package collector

import (
	"context"
	"fmt"
	"io"
	"time"

	"codeberg.org/mparkin/smcflux/internal/logger"
	"codeberg.org/mparkin/smcflux/internal/metrics"
	"codeberg.org/mparkin/smcflux/internal/smc"
)

// rpmNotAvailable is the sentinel for a fan register that failed to read
// or decode.
const rpmNotAvailable = -1.0

// Reader is the slice of the SMC connection the collector needs.
type Reader interface {
	ReadKey(key smc.Key) (smc.TypedValue, error)
}

// Selection names the sensor groups to emit for one run.
type Selection struct {
	CPU        bool
	GPU        bool
	WiFi       bool
	SSD        bool
	Fans       bool
	Everything bool
}

// Options carries the run-wide immutable state: the host tag value (empty
// for untagged runs) and the nanosecond timestamp shared by every line.
type Options struct {
	Host      string
	Timestamp int64
}

// Collector owns one run: it reads through the transport, applies the
// per-sensor emission policies and writes line-protocol records.
type Collector struct {
	smc       Reader
	out       io.Writer
	recorder  metrics.Collector
	logger    logger.Logger
	host      string
	hostTag   string
	timestamp int64
}

func New(r Reader, out io.Writer, recorder metrics.Collector, log logger.Logger, opts Options) *Collector {
	hostTag := ""
	if opts.Host != "" {
		hostTag = fmt.Sprintf("host=%s,", opts.Host)
	}

	return &Collector{
		smc:       r,
		out:       out,
		recorder:  recorder,
		logger:    log,
		host:      opts.Host,
		hostTag:   hostTag,
		timestamp: opts.Timestamp,
	}
}

// Run emits the selected sensor groups. Individual read failures are
// skipped; Run itself never fails.
func (c *Collector) Run(ctx context.Context, sel Selection) {
	if sel.Everything {
		for _, entry := range Registry {
			c.emitTemperature(ctx, entry.Key, entry.Sensor)
		}
		c.emitFans(ctx)

		return
	}

	if sel.CPU {
		c.emitTemperature(ctx, KeyCPUTemp, "CPU")
	}
	if sel.GPU {
		c.emitTemperature(ctx, KeyGPUTemp, "GPU")
	}
	if sel.SSD {
		c.emitTemperature(ctx, KeySSDTemp, "SSD")
	}
	if sel.WiFi {
		c.emitTemperature(ctx, KeyWiFiTemp, "WiFi")
	}
	if sel.Fans {
		c.emitFans(ctx)
	}
}

// emitTemperature reads one sp78 register and prints it when populated.
// Non-positive decodes mean the sensor does not exist on this hardware
// variant, not a real 0°C reading.
func (c *Collector) emitTemperature(ctx context.Context, key smc.Key, sensor string) {
	val, err := c.smc.ReadKey(key)
	if err != nil {
		c.logger.Debug().Str("key", key.String()).Err(err).Msg("temperature read skipped")
		return
	}

	temp, ok := smc.DecodeTemperature(val)
	if !ok || temp <= 0.0 {
		return
	}

	fmt.Fprintf(c.out, "temperature,%skey=%s,sensor=%s temp=%08.2f %d\n",
		c.hostTag, key, sensor, temp, c.timestamp)

	c.record(ctx, &metrics.Reading{
		Timestamp:   time.Unix(0, c.timestamp),
		Host:        c.host,
		Measurement: "temperature",
		Key:         key.String(),
		Sensor:      sensor,
		Value:       temp,
	})
}

// fanReading combines the three RPM registers of one fan with its derived
// load percentage.
type fanReading struct {
	current float64
	min     float64
	max     float64
	percent float64
}

func (c *Collector) emitFans(ctx context.Context) {
	val, err := c.smc.ReadKey(keyFanCount)
	if err != nil {
		c.logger.Debug().Err(err).Msg("fan count read skipped")
		return
	}

	count := int(smc.DecodeUint(val.Bytes[:], int(val.DataSize), 10))
	for i := 0; i < count; i++ {
		c.emitFan(ctx, i, count)
	}
}

func (c *Collector) emitFan(ctx context.Context, index, count int) {
	idKey, err := smc.FanKey(index, "ID")
	if err != nil {
		return
	}
	// Existence probe: a fan index the controller does not answer for is
	// skipped without touching its RPM registers.
	if _, err := c.smc.ReadKey(idKey); err != nil {
		return
	}

	reading, ok := c.readFan(index)
	if !ok || reading.current <= 0.0 {
		return
	}

	label := fanLabel(index, count)
	fmt.Fprintf(c.out, "fan,%skey=F%dAc,sensor=%s rpm=%08.2f,percent=%06.2f %d\n",
		c.hostTag, index, label, reading.current, reading.percent, c.timestamp)

	c.record(ctx, &metrics.Reading{
		Timestamp:   time.Unix(0, c.timestamp),
		Host:        c.host,
		Measurement: "fan",
		Key:         fmt.Sprintf("F%dAc", index),
		Sensor:      label,
		Value:       reading.current,
		Percent:     reading.percent,
		HasPercent:  true,
	})
}

func (c *Collector) readFan(index int) (fanReading, bool) {
	reading := fanReading{
		current: c.readRPM(index, "Ac"),
		min:     c.readRPM(index, "Mn"),
		max:     c.readRPM(index, "Mx"),
	}
	if reading.current < 0 || reading.min < 0 || reading.max < 0 {
		return fanReading{}, false
	}
	reading.percent = FanPercent(reading.current, reading.min, reading.max)

	return reading, true
}

func (c *Collector) readRPM(index int, suffix string) float64 {
	key, err := smc.FanKey(index, suffix)
	if err != nil {
		return rpmNotAvailable
	}

	val, err := c.smc.ReadKey(key)
	if err != nil {
		return rpmNotAvailable
	}

	rpm, ok := smc.DecodeRPM(val)
	if !ok {
		return rpmNotAvailable
	}

	return rpm
}

func (c *Collector) record(ctx context.Context, reading *metrics.Reading) {
	if err := c.recorder.Record(ctx, reading); err != nil {
		c.logger.Debug().Err(err).Msg("failed to archive reading")
	}
}

// FanPercent computes fan load from its operating range, clamped at zero
// below the minimum. No upper clamp: a current speed above the recorded
// maximum reports over 100.
func FanPercent(current, minRPM, maxRPM float64) float64 {
	pct := (current - minRPM) / (maxRPM - minRPM) * 100
	if pct < 0 {
		pct = 0
	}

	return pct
}

// fanLabel assigns the display label by fan index: a lone fan is "Main",
// a pair is "Left"/"Right", anything further is "Other".
func fanLabel(index, count int) string {
	switch index {
	case 0:
		if count == 1 {
			return "Main"
		}
		return "Left"
	case 1:
		return "Right"
	default:
		return "Other"
	}
}
