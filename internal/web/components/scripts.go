package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// pageScript loads deferred sections, filters events in place, fetches NGO
// overlays and reverts the success panel. The page works without it.
func pageScript() cmp.Node {
	return g.Script(cmp.Raw(pageJS))
}

const pageJS = `(function () {
  "use strict";

  function swap(el, html) {
    var tpl = document.createElement("template");
    tpl.innerHTML = html.trim();
    el.replaceWith(tpl.content);
  }

  document.querySelectorAll("[data-section-src]").forEach(function (el) {
    fetch(el.getAttribute("data-section-src"), { headers: { "Accept": "text/html" } })
      .then(function (r) { return r.ok ? r.text() : Promise.reject(r.status); })
      .then(function (html) { swap(el, html); })
      .catch(function () {
        var msg = document.createElement("p");
        msg.className = "empty-message text-gray-500 text-lg";
        msg.textContent = el.getAttribute("data-empty-message") || "";
        var box = document.createElement("div");
        box.className = "text-center py-12";
        if (el.id === "events-list") { box.classList.add("events-empty"); }
        box.appendChild(msg);
        el.removeAttribute("aria-busy");
        el.removeAttribute("data-section-src");
        el.setAttribute("data-state", "empty");
        el.className = "";
        el.replaceChildren(box);
      });
  });

  function applyFilter(filter) {
    var list = document.getElementById("events-list");
    if (!list) { return; }
    var shown = 0;
    list.querySelectorAll("[data-status]").forEach(function (card) {
      var match = filter === "all" || card.getAttribute("data-status") === filter;
      card.hidden = !match;
      if (match) { shown++; }
    });
    var empty = list.querySelector(".events-empty");
    if (empty) {
      empty.hidden = shown > 0;
      var msg = empty.querySelector(".empty-message");
      if (msg) { msg.textContent = filter === "all" ? "No events found." : "No " + filter + " events found."; }
    }
    list.setAttribute("data-filter-current", filter);
    document.querySelectorAll("[data-filter]").forEach(function (btn) {
      var active = btn.getAttribute("data-filter") === filter;
      btn.classList.toggle("active", active);
      btn.setAttribute("aria-pressed", String(active));
    });
  }

  var selected = null;
  var host = document.getElementById("ngo-overlay");

  function closeOverlay() {
    selected = null;
    if (host) { host.innerHTML = ""; }
  }

  function openOverlay(id) {
    selected = id;
    fetch("/sections/ngos/" + encodeURIComponent(id), { headers: { "Accept": "text/html" } })
      .then(function (r) { return r.ok ? r.text() : Promise.reject(r.status); })
      .then(function (html) {
        if (selected !== id || !host) { return; }
        host.innerHTML = html;
      })
      .catch(function () { if (selected === id) { closeOverlay(); } });
  }

  document.addEventListener("click", function (ev) {
    var filterBtn = ev.target.closest("[data-filter]");
    if (filterBtn) {
      ev.preventDefault();
      applyFilter(filterBtn.getAttribute("data-filter"));
      return;
    }
    var card = ev.target.closest("[data-ngo-id]");
    if (card && host) {
      ev.preventDefault();
      openOverlay(card.getAttribute("data-ngo-id"));
      return;
    }
    if (ev.target.closest("[data-overlay-close]") || ev.target.classList.contains("overlay")) {
      ev.preventDefault();
      closeOverlay();
    }
  });

  document.addEventListener("keydown", function (ev) {
    if (ev.key === "Escape" && selected !== null) { closeOverlay(); }
  });

  var form = document.getElementById("application-form");
  if (form) {
    form.addEventListener("submit", function () {
      var btn = form.querySelector("button[type=submit]");
      if (btn) { btn.disabled = true; btn.textContent = "Submitting..."; }
    });
  }

  var panel = document.querySelector("[data-revert-after]");
  if (panel && form) {
    var revert = function () {
      if (!panel.isConnected) { return; }
      panel.remove();
      form.hidden = false;
      if (window.history.replaceState) { window.history.replaceState(null, "", "/#apply"); }
    };
    var timer = setTimeout(revert, parseInt(panel.getAttribute("data-revert-after"), 10) || 5000);
    var dismiss = panel.querySelector("[data-dismiss]");
    if (dismiss) {
      dismiss.addEventListener("click", function (ev) {
        ev.preventDefault();
        clearTimeout(timer);
        revert();
      });
    }
  }
})();
`
