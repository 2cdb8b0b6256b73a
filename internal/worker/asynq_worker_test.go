package worker

import (
	"testing"

	"github.com/bullion-next/internal/models"
)

func TestBuildOrderTrackingInfoNilOrder(t *testing.T) {
	if got := buildOrderTrackingInfo(nil); got != "" {
		t.Fatalf("expected empty tracking info for nil order, got %q", got)
	}
}

func TestBuildOrderTrackingInfoNotShipped(t *testing.T) {
	order := &models.Order{Courier: "JNE"}
	if got := buildOrderTrackingInfo(order); got != "" {
		t.Fatalf("expected empty tracking info without tracking number, got %q", got)
	}
}

func TestBuildOrderTrackingInfoCourierAndNumber(t *testing.T) {
	order := &models.Order{
		Courier:        "  JNE  ",
		TrackingNumber: " JNE123456789 ",
	}
	got := buildOrderTrackingInfo(order)
	want := "JNE JNE123456789"
	if got != want {
		t.Fatalf("unexpected tracking info, want %q, got %q", want, got)
	}
}

func TestBuildOrderTrackingInfoNumberOnly(t *testing.T) {
	order := &models.Order{TrackingNumber: "RX-0099"}
	got := buildOrderTrackingInfo(order)
	if got != "RX-0099" {
		t.Fatalf("unexpected tracking info, got %q", got)
	}
}
