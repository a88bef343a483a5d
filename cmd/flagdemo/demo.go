package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Saastronomical/flagkit/pkg/feature"
)

func section(title string) {
	fmt.Printf("\n%s\n  %s\n%s\n\n", strings.Repeat("=", 70), title, strings.Repeat("=", 70))
}

func onOff(enabled bool) string {
	if enabled {
		return "ENABLED "
	}
	return "DISABLED"
}

func runDemo(registry *feature.Registry) {
	demoBasicChecks(registry)
	demoGradualRollout(registry)
	demoVariants(registry)
	demoTargetedUsers(registry)
	demoKillSwitch(registry)
	demoEnvOverrides()

	section("STATUS REPORT")
	fmt.Println(registry.StatusReport())
}

func demoBasicChecks(registry *feature.Registry) {
	section("1. BASIC FLAG CHECKING")

	const userID = "demo_user_123"
	fmt.Printf("Testing user: %s\n\n", userID)

	for _, name := range []string{
		"aggressive_capture",
		"show_risks_upfront",
		"require_both_contacts",
		"early_advisor_intro",
	} {
		flag, err := registry.Flag(name)
		if err != nil {
			continue
		}
		fmt.Printf("%s: %s\n    %s\n", onOff(registry.IsEnabled(name, userID)), name, flag.Description)
	}
}

func demoGradualRollout(registry *feature.Registry) {
	section("2. GRADUAL ROLLOUT (50%)")

	registry.UpdateFlag("aggressive_capture",
		feature.SetEnabled(true),
		feature.SetRolloutPercentage(50),
	)

	enabled := 0
	for i := 0; i < 20; i++ {
		if registry.IsEnabled("aggressive_capture", fmt.Sprintf("user_%03d", i)) {
			enabled++
		}
	}
	fmt.Printf("Out of 20 users: %d enabled, %d disabled (expect roughly half)\n\n", enabled, 20-enabled)

	fmt.Println("Consistency for user_005 across three checks:")
	for check := 0; check < 3; check++ {
		fmt.Printf("  check %d: %s\n", check+1, onOff(registry.IsEnabled("aggressive_capture", "user_005")))
	}
}

func demoVariants(registry *feature.Registry) {
	section("3. A/B TESTING (agent_tone)")

	for _, userID := range []string{"buyer_alice", "buyer_bob", "buyer_charlie"} {
		fmt.Printf("  %-15s -> %s tone\n", userID, registry.GetVariant("agent_tone", userID, "control"))
	}
}

func demoTargetedUsers(registry *feature.Registry) {
	section("4. TARGETED BETA USERS")

	registry.UpdateFlag("collect_budget_upfront",
		feature.SetEnabled(true),
		feature.SetRolloutPercentage(0),
		feature.SetTargetUsers([]string{"vip_user_1", "internal_tester"}),
	)

	fmt.Println("collect_budget_upfront at 0% rollout with two beta testers:")
	for _, userID := range []string{"vip_user_1", "regular_user_abc", "internal_tester"} {
		fmt.Printf("  %s: %s\n", onOff(registry.IsEnabled("collect_budget_upfront", userID)), userID)
	}
}

func demoKillSwitch(registry *feature.Registry) {
	section("5. KILL SWITCH (instant disable)")

	const userID = "test_user"
	fmt.Printf("show_risks_upfront live at 100%%: %s\n", onOff(registry.IsEnabled("show_risks_upfront", userID)))

	registry.UpdateFlag("show_risks_upfront", feature.SetEnabled(false))
	fmt.Printf("after kill switch:              %s\n", onOff(registry.IsEnabled("show_risks_upfront", userID)))
	fmt.Println("\nNo deploy needed; restore with another update or FF_SHOW_RISKS_UPFRONT=true.")
}

func demoEnvOverrides() {
	section("6. ENVIRONMENT OVERRIDES")

	for _, key := range []string{"FF_AGGRESSIVE_CAPTURE", "FF_SHOW_RISKS_UPFRONT", "FF_REQUIRE_BOTH_CONTACTS"} {
		value := os.Getenv(key)
		if value == "" {
			value = "not set"
		}
		fmt.Printf("  %s: %s\n", key, value)
	}
	fmt.Println("\nTry: FF_AGGRESSIVE_CAPTURE=50 flagdemo")
}
