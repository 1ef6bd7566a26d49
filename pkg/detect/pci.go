package detect

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/modelenv/gpusync/pkg/logging"
)

// pciDetector scans the PCI bus for NVIDIA graphics cards. It works without
// driver tooling installed, so it serves as a fallback when nvidia-smi is
// missing.
type pciDetector struct {
	log logging.Logger
	gpu func() (*ghw.GPUInfo, error)
}

// NewPCIDetector returns a Detector backed by a PCI bus scan.
func NewPCIDetector(log logging.Logger) Detector {
	return &pciDetector{
		log: log,
		gpu: func() (*ghw.GPUInfo, error) { return ghw.GPU() },
	}
}

func (d *pciDetector) Detect(_ context.Context) (string, error) {
	gpus, err := d.gpu()
	if err != nil {
		return "", fmt.Errorf("%w: PCI scan failed: %v", ErrUnavailable, err)
	}
	for _, card := range gpus.GraphicsCards {
		if card.DeviceInfo == nil || card.DeviceInfo.Vendor == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(card.DeviceInfo.Vendor.Name), "nvidia") {
			continue
		}
		if card.DeviceInfo.Product != nil && card.DeviceInfo.Product.Name != "" {
			d.log.Debugf("PCI scan found GPU: %s", card.DeviceInfo.Product.Name)
			return card.DeviceInfo.Product.Name, nil
		}
	}
	return "", fmt.Errorf("%w: no NVIDIA graphics card on the PCI bus", ErrUnavailable)
}
