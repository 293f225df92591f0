package wm

import "testing"

func setOfClients(cs []*Client) map[*Client]bool {
	s := make(map[*Client]bool, len(cs))
	for _, c := range cs {
		s[c] = true
	}
	return s
}

// P1: client list == focus stack as sets, after manage/unmanage/focus churn.
func TestClientListEqualsFocusStackAsSets(t *testing.T) {
	e, _, m := newTestEngine(9)
	for i := WinID(1); i <= 3; i++ {
		c := &Client{Win: i, Mon: m, Tags: 1, BW: 1}
		m.attachClient(c)
		m.attachFocus(c)
		e.byWindow[i] = c
	}

	e.Focus(m, m.Clients[1])
	e.FocusStack(m, -1, false)

	want := setOfClients(m.Clients)
	got := setOfClients(m.Focus)
	if len(want) != len(got) {
		t.Fatalf("client list has %d entries, focus stack has %d", len(want), len(got))
	}
	for c := range want {
		if !got[c] {
			t.Errorf("client %v present in client list but not focus stack", c.Win)
		}
	}

	mid := m.Clients[1]
	e.Unmanage(mid, true)
	want = setOfClients(m.Clients)
	got = setOfClients(m.Focus)
	if len(want) != len(got) {
		t.Fatalf("after unmanage: client list has %d entries, focus stack has %d", len(want), len(got))
	}
}

// P2: selmon->sel is nil or present in selmon's client list.
func TestSelIsNilOrInClientList(t *testing.T) {
	e, _, m := newTestEngine(9)
	for i := WinID(1); i <= 2; i++ {
		c := &Client{Win: i, Mon: m, Tags: 1, BW: 1}
		m.attachClient(c)
		m.attachFocus(c)
		e.byWindow[i] = c
	}
	e.Focus(m, m.Clients[0])
	if m.Sel == nil {
		t.Fatalf("expected a selection")
	}
	found := false
	for _, c := range m.Clients {
		if c == m.Sel {
			found = true
		}
	}
	if !found {
		t.Errorf("selmon.Sel not present in client list")
	}

	e.Unmanage(m.Clients[0], true)
	if m.Sel != nil {
		found = false
		for _, c := range m.Clients {
			if c == m.Sel {
				found = true
			}
		}
		if !found {
			t.Errorf("selmon.Sel not present in client list after unmanage")
		}
	}
}
