package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{addr: ":23234", want: "ssh localhost -p 23234"},
		{addr: ":2222", want: "ssh localhost -p 2222"},
		{addr: "0.0.0.0:2200", want: "ssh localhost -p 2200"},
		{addr: "[::]:2200", want: "ssh localhost -p 2200"},
		{addr: "example.com:2022", want: "ssh example.com -p 2022"},
		{addr: "10.0.0.5:22", want: "ssh 10.0.0.5"},
		{addr: "life.local", want: "ssh life.local"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
