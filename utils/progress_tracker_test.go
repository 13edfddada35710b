package utils

import (
	"testing"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/golang/mock/gomock"
)

func TestProgressTracker_ReportsEveryThresholdAndAtTheEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)

	// reports after steps 2, 4 and the final step 5
	log.EXPECT().Infof(gomock.Any(), gomock.Any()).Times(3)

	pt := NewProgressTracker("cells", 5, 2, log)
	for i := 0; i < 5; i++ {
		pt.Step()
	}

	if want, got := 5, pt.Steps(); want != got {
		t.Errorf("unexpected number of steps; want %d, got %d", want, got)
	}
}

func TestProgressTracker_NonPositiveThresholdReportsEachStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)

	log.EXPECT().Infof(gomock.Any(), gomock.Any()).Times(2)

	pt := NewProgressTracker("cells", 2, 0, log)
	pt.Step()
	pt.Step()
}
