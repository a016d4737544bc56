// Package notify is the loosely-coupled channel by which any component can
// signal "permission denied" (or any transient notice) to the UI shell
// without holding a reference to it.
//
// The Bus carries at most one message. Publishing while a message is on
// display supersedes it and restarts the auto-dismiss timer; there is no
// queue, by contract. The shell is the one expected subscriber, but the
// bus does not enforce that.
//
//	bus := notify.NewBus()
//	defer bus.Close()
//
//	// Shell side:
//	events := bus.Subscribe(ctx)
//	go func() {
//	    for ev := range events {
//	        switch ev.Kind {
//	        case notify.EventShown:
//	            // render banner with ev.Message.Text
//	        case notify.EventDismissed:
//	            // hide banner
//	        }
//	    }
//	}()
//
//	// Anywhere deep in the app:
//	bus.Publish("Você não tem permissão para executar esta ação")
package notify
